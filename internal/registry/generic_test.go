package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

func TestGenericChecker_HasImage(t *testing.T) {
	tests := []struct {
		name           string
		manifestStatus int
		expected       bool
	}{
		{
			name:           "manifest found",
			manifestStatus: http.StatusOK,
			expected:       true,
		},
		{
			name:           "manifest missing",
			manifestStatus: http.StatusNotFound,
			expected:       false,
		},
		{
			name:           "unauthorized treated as missing",
			manifestStatus: http.StatusUnauthorized,
			expected:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodHead, r.Method)
				assert.Equal(t, "/v2/team/app/manifests/v2", r.URL.Path)
				assert.Equal(t, manifestV2MediaType, r.Header.Get("Accept"))
				w.WriteHeader(tt.manifestStatus)
			}))
			defer server.Close()

			host := strings.TrimPrefix(server.URL, "http://")
			checker := NewGenericChecker(host, &types.RegistryConfig{Insecure: true}, logger.NewTest())

			ref := types.ParseImageReference(host + "/team/app:v2")
			exists, err := checker.HasImage(context.Background(), ref)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestGenericChecker_HasImage_BasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", username)
		assert.Equal(t, "secret", password)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	host := strings.TrimPrefix(server.URL, "http://")
	config := &types.RegistryConfig{
		Username: "admin",
		Password: "secret",
		Insecure: true,
	}
	checker := NewGenericChecker(host, config, logger.NewTest())

	exists, err := checker.HasImage(context.Background(), types.ParseImageReference(host+"/team/app:v2"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGenericChecker_HasImage_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := strings.TrimPrefix(server.URL, "http://")
	server.Close()

	checker := NewGenericChecker(host, &types.RegistryConfig{Insecure: true}, logger.NewTest())

	exists, err := checker.HasImage(context.Background(), types.ParseImageReference(host+"/team/app:v2"))
	assert.Error(t, err)
	assert.False(t, exists)
}
