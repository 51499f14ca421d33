package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

func TestNewECRChecker_InvalidHost(t *testing.T) {
	tests := []struct {
		name string
		host string
	}{
		{
			name: "docker hub host",
			host: "docker.io",
		},
		{
			name: "generic registry host",
			host: "myregistry.example.com:5000",
		},
		{
			name: "ecr public gallery",
			host: "public.ecr.aws",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, err := NewECRChecker(tt.host, nil, logger.NewTest())
			assert.Error(t, err)
			assert.Nil(t, checker)
		})
	}
}

func TestNewECRChecker_HostDerivation(t *testing.T) {
	checker, err := newECRChecker("123456789012.dkr.ecr.us-east-1.amazonaws.com", nil, logger.NewTest())
	require.NoError(t, err)

	assert.Equal(t, "123456789012", checker.AccountID)
	assert.Equal(t, "us-east-1", checker.Region)
}

func TestNewECRChecker_ConfigOverrides(t *testing.T) {
	cfg := &types.RegistryConfig{
		Region:    "sa-east-1",
		AccountID: "999999999999",
		Profiles:  []string{"production"},
	}

	checker, err := newECRChecker("123456789012.dkr.ecr.us-east-1.amazonaws.com", cfg, logger.NewTest())
	require.NoError(t, err)

	assert.Equal(t, "sa-east-1", checker.Region)
	assert.Equal(t, "999999999999", checker.AccountID)
	assert.Equal(t, []string{"production"}, checker.profiles)
}
