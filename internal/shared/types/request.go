package types

// CreateRepositoryRequest is the payload accepted by POST /repositories
type CreateRepositoryRequest struct {
	Name   *string `json:"name" binding:"required"`
	Type   *string `json:"type" binding:"required"`
	Format *string `json:"format" binding:"required"`
	URL    *string `json:"url" binding:"required"`
	Status *string `json:"status" binding:"required"`
}

// ToRepository converts a bound request into a Repository
func (r CreateRepositoryRequest) ToRepository() Repository {
	return Repository{
		Name:   deref(r.Name),
		Type:   deref(r.Type),
		Format: deref(r.Format),
		URL:    deref(r.URL),
		Status: deref(r.Status),
	}
}

// UploadPackageRequest is the payload accepted by POST /packages.
// upload_date is server-assigned; a client-supplied value is dropped during binding.
type UploadPackageRequest struct {
	Name       *string `json:"name" binding:"required"`
	Version    *string `json:"version" binding:"required"`
	Repository *string `json:"repository" binding:"required"`
}

// ToPackage converts a bound request into a Package without an upload date
func (r UploadPackageRequest) ToPackage() Package {
	return Package{
		Name:       deref(r.Name),
		Version:    deref(r.Version),
		Repository: deref(r.Repository),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
