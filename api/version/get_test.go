package version

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/gameshelf-api/api/types"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		path            string
		deps            *types.Dependencies
		expectedVersion string
	}{
		{name: "root with build version", path: "/", deps: &types.Dependencies{Version: "1.2.0"}, expectedVersion: "1.2.0"},
		{name: "version path", path: "/version", deps: &types.Dependencies{Version: "1.2.0"}, expectedVersion: "1.2.0"},
		{name: "unset version", path: "/version", deps: &types.Dependencies{}, expectedVersion: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			RegisterRoutes(router, tt.deps)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			var response Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, Name, response.Name)
			assert.Equal(t, tt.expectedVersion, response.Version)
			assert.Equal(t, "running", response.Status)
		})
	}
}
