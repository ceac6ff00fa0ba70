package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/registry"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		resource   string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			resource:   resourceRepository,
			err:        fmt.Errorf("%w: repository x", registry.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Repository not found"}`,
		},
		{
			name:       "conflict",
			resource:   resourceRepository,
			err:        fmt.Errorf("%w: repository x already exists", registry.ErrConflict),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Repository already exists"}`,
		},
		{
			name:       "field validation",
			resource:   resourcePackage,
			err:        fmt.Errorf("%w: %w", registry.ErrValidation, &utils.FieldError{Field: "version", Message: "too long"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"detail":[{"loc":["body","version"],"msg":"too long","type":"value_error"}]}`,
		},
		{
			name:       "unexpected",
			resource:   resourcePackage,
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.resource, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestBindingIssues(t *testing.T) {
	bind := func(body string) error {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if body != "" {
			req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		}
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = req

		var payload types.CreateRepositoryRequest
		return c.ShouldBindJSON(&payload)
	}

	tests := []struct {
		name     string
		body     string
		wantLoc  []string
		wantType string
		wantLen  int
	}{
		{name: "empty body", body: "", wantLoc: []string{"body"}, wantType: "value_error.missing", wantLen: 1},
		{name: "all missing", body: `{}`, wantLoc: []string{"body", "name"}, wantType: "value_error.missing", wantLen: 5},
		{name: "url missing", body: `{"name":"n","type":"t","format":"f","status":"s"}`, wantLoc: []string{"body", "url"}, wantType: "value_error.missing", wantLen: 1},
		{name: "wrong type", body: `{"name":true}`, wantLoc: []string{"body", "name"}, wantType: "type_error", wantLen: 1},
		{name: "truncated", body: `{"name":"n"`, wantLoc: []string{"body"}, wantType: "value_error.jsondecode", wantLen: 1},
		{name: "garbage", body: `not json`, wantLoc: []string{"body"}, wantType: "value_error.jsondecode", wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bind(tt.body)
			require.Error(t, err)

			issues := bindingIssues(err)
			require.Len(t, issues, tt.wantLen)
			assert.Equal(t, tt.wantLoc, issues[0].Loc)
			assert.Equal(t, tt.wantType, issues[0].Type)
		})
	}
}

func TestBindingIssuesFallback(t *testing.T) {
	issues := bindingIssues(io.ErrClosedPipe)
	require.Len(t, issues, 1)
	assert.Equal(t, []string{"body"}, issues[0].Loc)
	assert.Equal(t, "value_error", issues[0].Type)
}

func TestValidationResponseShape(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondBindError(c, io.EOF)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "detail")
}
