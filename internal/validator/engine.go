package validator

import (
	"context"
	"fmt"
	"time"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/internal/registry"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

// resolver permite injetar um Resolver falso nos testes.
type resolver interface {
	ForReference(ref *types.ImageReference) registry.Checker
}

type Engine struct {
	resolver resolver
	logger   *logger.Logger
}

func NewEngine(res *registry.Resolver, log *logger.Logger) *Engine {
	return &Engine{
		resolver: res,
		logger:   log,
	}
}

// ValidateList percorre a lista de imagens sequencialmente. Falhas de uma
// imagem nunca abortam o lote: cada entrada produz exatamente um resultado.
func (e *Engine) ValidateList(ctx context.Context, images []string) *types.BatchResult {
	batch := &types.BatchResult{
		Timestamp:   time.Now(),
		TotalImages: len(images),
		Results:     make(map[string]*types.ValidationResult, len(images)),
	}

	e.logger.Info("batch_started").
		Int("total_images", len(images)).
		Send()

	for _, image := range images {
		e.logger.Info("validating_image").
			Str("image", image).
			Send()

		batch.Results[image] = e.ValidateImage(ctx, image)
	}

	e.logger.Info("batch_completed").
		Int("total_images", batch.TotalImages).
		Int("found", batch.SuccessCount()).
		Int("not_found", batch.FailureCount()).
		Send()

	return batch
}

// ValidateImage executa o pipeline linear de uma imagem:
// parse → verificação de existência → enriquecimento (quando suportado).
func (e *Engine) ValidateImage(ctx context.Context, image string) *types.ValidationResult {
	ref := types.ParseImageReference(image)

	result := &types.ValidationResult{
		Image:      image,
		Registry:   ref.Registry,
		Repository: ref.Repository,
		Tag:        ref.Tag,
		Metadata:   map[string]interface{}{},
		Tags:       []string{},
		Errors:     []string{},
	}

	checker := e.resolver.ForReference(ref)

	exists, err := checker.HasImage(ctx, ref)
	if err != nil {
		e.logger.Warn("image_check_failed").
			Str("image", image).
			Str("registry", ref.Registry).
			Err(err).
			Send()
		result.Errors = append(result.Errors, fmt.Sprintf("erro ao validar %s: %v", image, err))
		return result
	}

	if !exists {
		e.logger.Info("image_not_found").
			Str("image", image).
			Str("registry", ref.Registry).
			Send()
		result.Errors = append(result.Errors, fmt.Sprintf("imagem %s não encontrada no registry %s", image, ref.Registry))
		return result
	}

	result.Exists = true

	e.logger.Info("image_exists").
		Str("image", image).
		Str("registry", ref.Registry).
		Send()

	if enricher, ok := checker.(registry.Enricher); ok {
		e.enrich(ctx, enricher, ref, result)
	}

	return result
}

// enrich preenche metadados e tags do repositório. Falhas aqui degradam para
// listas vazias e não alteram o resultado de existência.
func (e *Engine) enrich(ctx context.Context, enricher registry.Enricher, ref *types.ImageReference, result *types.ValidationResult) {
	metadata, err := enricher.RepositoryMetadata(ctx, ref)
	if err != nil {
		e.logger.Warn("metadata_fetch_failed").
			Str("repository", ref.Repository).
			Err(err).
			Send()
	} else {
		result.Metadata = metadata
	}

	tags, err := enricher.RepositoryTags(ctx, ref)
	if err != nil {
		e.logger.Warn("tags_fetch_failed").
			Str("repository", ref.Repository).
			Err(err).
			Send()
	} else {
		result.Tags = tags
	}
}
