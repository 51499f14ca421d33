package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

func TestResolver_ForReference(t *testing.T) {
	cfg := &types.Config{
		Registries: []types.RegistryConfig{
			{
				Name:     "internal",
				Host:     "myregistry.example.com:5000",
				Username: "admin",
				Password: "secret",
				Insecure: true,
			},
		},
	}

	resolver := NewResolver(cfg, logger.NewTest())

	t.Run("docker hub reference uses the hub checker", func(t *testing.T) {
		checker := resolver.ForReference(types.ParseImageReference("nginx:latest"))
		assert.IsType(t, &DockerHubChecker{}, checker)
		assert.Equal(t, "docker.io", checker.Name())
	})

	t.Run("configured registry gets credentials", func(t *testing.T) {
		checker := resolver.ForReference(types.ParseImageReference("myregistry.example.com:5000/team/app:v2"))
		generic, ok := checker.(*GenericChecker)
		require.True(t, ok)
		assert.Equal(t, "admin", generic.Username)
		assert.Equal(t, "secret", generic.Password)
		assert.True(t, generic.Insecure)
	})

	t.Run("unconfigured registry gets anonymous checker", func(t *testing.T) {
		checker := resolver.ForReference(types.ParseImageReference("quay.io/org/app:v1"))
		generic, ok := checker.(*GenericChecker)
		require.True(t, ok)
		assert.Empty(t, generic.Username)
		assert.False(t, generic.Insecure)
	})

	t.Run("checkers are cached per registry", func(t *testing.T) {
		first := resolver.ForReference(types.ParseImageReference("quay.io/org/app:v1"))
		second := resolver.ForReference(types.ParseImageReference("quay.io/other/app:v2"))
		assert.Same(t, first, second)
	})
}

func TestResolver_FindRegistryConfig_NilConfig(t *testing.T) {
	resolver := NewResolver(nil, logger.NewTest())
	checker := resolver.ForReference(types.ParseImageReference("quay.io/org/app:v1"))
	assert.IsType(t, &GenericChecker{}, checker)
}

func TestDockerHubChecker_ImplementsEnricher(t *testing.T) {
	var checker Checker = NewDockerHubChecker(logger.NewTest())
	_, ok := checker.(Enricher)
	assert.True(t, ok)
}
