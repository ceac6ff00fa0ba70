package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/registry"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/utils"
)

const (
	resourceRepository = "Repository"
	resourcePackage    = "Package"
)

// respondError maps a domain error to its status code and {"detail"} body
func respondError(c *gin.Context, resource string, err error) {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{Detail: resource + " not found"})
	case errors.Is(err, registry.ErrConflict):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Detail: resource + " already exists"})
	case errors.Is(err, registry.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, types.ValidationErrorResponse{Detail: fieldIssues(err)})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Detail: "internal server error"})
	}
}

// respondBindError answers a request body that could not be decoded or is incomplete
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, types.ValidationErrorResponse{Detail: bindingIssues(err)})
}

func fieldIssues(err error) []types.ValidationIssue {
	var fe *utils.FieldError
	if errors.As(err, &fe) {
		return []types.ValidationIssue{{
			Loc:  []string{"body", fe.Field},
			Msg:  fe.Message,
			Type: "value_error",
		}}
	}
	return []types.ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
}

func bindingIssues(err error) []types.ValidationIssue {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &verrs):
		issues := make([]types.ValidationIssue, 0, len(verrs))
		for _, fe := range verrs {
			issue := types.ValidationIssue{
				Loc:  []string{"body", strings.ToLower(fe.Field())},
				Msg:  "field required",
				Type: "value_error.missing",
			}
			if fe.Tag() != "required" {
				issue.Msg = fe.Error()
				issue.Type = "value_error"
			}
			issues = append(issues, issue)
		}
		return issues

	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []types.ValidationIssue{{
			Loc:  loc,
			Msg:  "expected " + typeErr.Type.String() + ", got " + typeErr.Value,
			Type: "type_error",
		}}

	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return []types.ValidationIssue{{
			Loc:  []string{"body"},
			Msg:  "malformed JSON body",
			Type: "value_error.jsondecode",
		}}

	case errors.Is(err, io.EOF):
		return []types.ValidationIssue{{
			Loc:  []string{"body"},
			Msg:  "field required",
			Type: "value_error.missing",
		}}
	}

	return []types.ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
}
