package registry

import (
	"context"
	"crypto/tls"
	"net/http"
	"sync"
	"time"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
	"github.com/kevinfinalboss/spyglass/pkg/utils"
)

type Checker interface {
	Name() string
	HasImage(ctx context.Context, ref *types.ImageReference) (bool, error)
}

// Enricher é implementado pelos checkers que também conseguem buscar
// metadados e tags do repositório. Hoje apenas o Docker Hub.
type Enricher interface {
	RepositoryMetadata(ctx context.Context, ref *types.ImageReference) (map[string]interface{}, error)
	RepositoryTags(ctx context.Context, ref *types.ImageReference) ([]string, error)
}

type Resolver struct {
	config    *types.Config
	logger    *logger.Logger
	dockerHub *DockerHubChecker
	checkers  map[string]Checker
	mutex     sync.Mutex
}

func NewResolver(cfg *types.Config, log *logger.Logger) *Resolver {
	return &Resolver{
		config:    cfg,
		logger:    log,
		dockerHub: NewDockerHubChecker(log),
		checkers:  make(map[string]Checker),
	}
}

// ForReference escolhe o checker adequado para o registry da referência:
// docker.io usa o fluxo de token + Hub, hosts ECR usam a API da AWS e
// qualquer outro host recebe uma consulta direta de manifest.
func (r *Resolver) ForReference(ref *types.ImageReference) Checker {
	if ref.IsDockerHub() {
		return r.dockerHub
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if checker, ok := r.checkers[ref.Registry]; ok {
		return checker
	}

	checker := r.buildChecker(ref.Registry)
	r.checkers[ref.Registry] = checker
	return checker
}

func (r *Resolver) buildChecker(registry string) Checker {
	regConfig := r.findRegistryConfig(registry)

	if utils.IsECRRegistry(registry) {
		checker, err := NewECRChecker(registry, regConfig, r.logger)
		if err == nil {
			return checker
		}
		r.logger.Warn("image_check_failed").
			Str("registry", registry).
			Err(err).
			Send()
	}

	return NewGenericChecker(registry, regConfig, r.logger)
}

func (r *Resolver) findRegistryConfig(registry string) *types.RegistryConfig {
	if r.config == nil {
		return nil
	}

	for i := range r.config.Registries {
		if r.config.Registries[i].Host == registry {
			return &r.config.Registries[i]
		}
	}

	return nil
}

func createHTTPClient(insecure bool) *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: insecure,
			},
		},
	}
}
