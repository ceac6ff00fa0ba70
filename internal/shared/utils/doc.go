// Package utils provides payload field validation shared by the domain services.
//
// Presence and JSON types are checked when a request is bound; the helpers
// here add length and content limits (no NUL bytes, valid UTF-8). Every
// failure is a *FieldError naming the offending field.
//
// Example Usage:
//
//	if err := utils.ValidateName(req.Name, "name"); err != nil {
//	    return err
//	}
package utils
