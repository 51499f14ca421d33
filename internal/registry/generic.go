package registry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

type GenericChecker struct {
	Host       string
	Username   string
	Password   string
	Insecure   bool
	logger     *logger.Logger
	httpClient *http.Client
}

func NewGenericChecker(host string, config *types.RegistryConfig, log *logger.Logger) *GenericChecker {
	checker := &GenericChecker{
		Host:   host,
		logger: log,
	}

	if config != nil {
		checker.Username = config.Username
		checker.Password = config.Password
		checker.Insecure = config.Insecure
	}

	checker.httpClient = createHTTPClient(checker.Insecure)

	return checker
}

func (c *GenericChecker) Name() string {
	return c.Host
}

func (c *GenericChecker) HasImage(ctx context.Context, ref *types.ImageReference) (bool, error) {
	scheme := "https"
	if c.Insecure {
		scheme = "http"
	}

	manifestURL := fmt.Sprintf("%s://%s/v2/%s/manifests/%s", scheme, c.Host, ref.Repository, ref.Tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, manifestURL, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", manifestV2MediaType)

	if c.Username != "" && c.Password != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("falha na conexão com registry %s: %w", c.Host, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
