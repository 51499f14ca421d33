package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

const (
	dockerHubAuthURL     = "https://auth.docker.io/token"
	dockerHubRegistryURL = "https://registry-1.docker.io"
	dockerHubAPIURL      = "https://hub.docker.com"

	dockerHubAuthService = "registry.docker.io"
	manifestV2MediaType  = "application/vnd.docker.distribution.manifest.v2+json"

	tagListLimit = 10
)

type DockerHubChecker struct {
	AuthURL     string
	RegistryURL string
	APIURL      string
	logger      *logger.Logger
	httpClient  *http.Client
}

func NewDockerHubChecker(log *logger.Logger) *DockerHubChecker {
	return &DockerHubChecker{
		AuthURL:     dockerHubAuthURL,
		RegistryURL: dockerHubRegistryURL,
		APIURL:      dockerHubAPIURL,
		logger:      log,
		httpClient:  createHTTPClient(false),
	}
}

func (c *DockerHubChecker) Name() string {
	return types.DefaultRegistry
}

// HasImage tenta o fluxo oficial do registry (token anônimo de pull + HEAD no
// manifest). Se o token não puder ser obtido, cai para a API web do Hub.
func (c *DockerHubChecker) HasImage(ctx context.Context, ref *types.ImageReference) (bool, error) {
	token, err := c.requestPullToken(ctx, ref.Repository)
	if err != nil {
		c.logger.Warn("token_request_failed").
			Str("repository", ref.Repository).
			Err(err).
			Send()

		c.logger.Debug("hub_fallback").
			Str("repository", ref.Repository).
			Send()

		return c.hasImageViaHub(ctx, ref)
	}

	manifestURL := fmt.Sprintf("%s/v2/%s/manifests/%s", c.RegistryURL, ref.Repository, ref.Tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, manifestURL, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", manifestV2MediaType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("falha na consulta de manifest para %s:%s: %w", ref.Repository, ref.Tag, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}

func (c *DockerHubChecker) requestPullToken(ctx context.Context, repository string) (string, error) {
	params := url.Values{}
	params.Set("service", dockerHubAuthService)
	params.Set("scope", fmt.Sprintf("repository:%s:pull", repository))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.AuthURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("falha na requisição de token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("endpoint de token retornou status %d", resp.StatusCode)
	}

	var tokenResp types.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("falha ao decodificar resposta de token: %w", err)
	}

	token := tokenResp.Token
	if token == "" {
		token = tokenResp.AccessToken
	}
	if token == "" {
		return "", fmt.Errorf("endpoint de token não retornou token")
	}

	return token, nil
}

func (c *DockerHubChecker) hasImageViaHub(ctx context.Context, ref *types.ImageReference) (bool, error) {
	tagURL := fmt.Sprintf("%s/v2/repositories/%s/tags/%s/", c.APIURL, ref.HubRepository(), ref.Tag)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tagURL, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("falha na consulta ao Docker Hub para %s:%s: %w", ref.Repository, ref.Tag, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}

func (c *DockerHubChecker) RepositoryMetadata(ctx context.Context, ref *types.ImageReference) (map[string]interface{}, error) {
	repoURL := fmt.Sprintf("%s/v2/repositories/%s/", c.APIURL, ref.HubRepository())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, repoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar metadados de %s: %w", ref.Repository, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API do Hub retornou status %d para %s", resp.StatusCode, ref.Repository)
	}

	var repo types.HubRepository
	if err := json.NewDecoder(resp.Body).Decode(&repo); err != nil {
		return nil, fmt.Errorf("falha ao decodificar metadados de %s: %w", ref.Repository, err)
	}

	metadata := map[string]interface{}{
		"description":  repo.Description,
		"star_count":   repo.StarCount,
		"pull_count":   repo.PullCount,
		"last_updated": repo.LastUpdated,
	}

	return metadata, nil
}

func (c *DockerHubChecker) RepositoryTags(ctx context.Context, ref *types.ImageReference) ([]string, error) {
	tagsURL := fmt.Sprintf("%s/v2/repositories/%s/tags/", c.APIURL, ref.HubRepository())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tagsURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tags de %s: %w", ref.Repository, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API do Hub retornou status %d para tags de %s", resp.StatusCode, ref.Repository)
	}

	var tagsResp types.HubTagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tagsResp); err != nil {
		return nil, fmt.Errorf("falha ao decodificar tags de %s: %w", ref.Repository, err)
	}

	// Apenas a primeira página, limitada às 10 primeiras tags.
	tags := make([]string, 0, tagListLimit)
	for _, tag := range tagsResp.Results {
		if len(tags) >= tagListLimit {
			break
		}
		tags = append(tags, tag.Name)
	}

	return tags, nil
}
