package reporter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

type JSONReporter struct {
	logger *logger.Logger
}

func NewJSONReporter(log *logger.Logger) *JSONReporter {
	return &JSONReporter{logger: log}
}

func (r *JSONReporter) Save(batch *types.BatchResult, path string) error {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("falha ao serializar resultados: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("falha ao salvar resultados em %s: %w", path, err)
	}

	r.logger.Info("results_saved").
		Str("file", path).
		Int("total_images", batch.TotalImages).
		Send()

	return nil
}
