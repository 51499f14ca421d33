package utils

import (
	"fmt"
	"strings"
)

func IsPublicRegistry(registry string) bool {
	publicRegistries := []string{
		"docker.io",
		"registry.hub.docker.com",
		"quay.io",
		"gcr.io",
		"registry.k8s.io",
		"k8s.gcr.io",
		"ghcr.io",
		"public.ecr.aws",
		"mcr.microsoft.com",
		"index.docker.io",
		"registry-1.docker.io",
	}

	for _, pubReg := range publicRegistries {
		if registry == pubReg {
			return true
		}
	}

	return false
}

func IsECRRegistry(registry string) bool {
	return strings.Contains(registry, ".dkr.ecr.") &&
		strings.HasSuffix(registry, ".amazonaws.com")
}

// ParseECRHost extrai o account ID e a região de um host ECR no formato
// <account>.dkr.ecr.<region>.amazonaws.com.
func ParseECRHost(registry string) (accountID, region string, err error) {
	if !IsECRRegistry(registry) {
		return "", "", fmt.Errorf("host %s não é um registry ECR", registry)
	}

	parts := strings.Split(registry, ".")
	if len(parts) < 6 {
		return "", "", fmt.Errorf("host ECR inválido: %s", registry)
	}

	return parts[0], parts[3], nil
}
