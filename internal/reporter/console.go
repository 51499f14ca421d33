package reporter

import (
	"sort"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

const consoleTagPreview = 5

type ConsoleReporter struct {
	logger *logger.Logger
}

func NewConsoleReporter(log *logger.Logger) *ConsoleReporter {
	return &ConsoleReporter{logger: log}
}

func (r *ConsoleReporter) Print(batch *types.BatchResult) {
	r.logger.Info("validation_summary").
		Str("separator", "===========================================").
		Send()

	sortedImages := make([]string, 0, len(batch.Results))
	for image := range batch.Results {
		sortedImages = append(sortedImages, image)
	}
	sort.Strings(sortedImages)

	for _, image := range sortedImages {
		result := batch.Results[image]

		event := r.logger.Info("image_result").
			Str("image", image).
			Bool("exists", result.Exists).
			Str("registry", result.Registry).
			Str("repository", result.Repository).
			Str("tag", result.Tag)

		if len(result.Errors) > 0 {
			event = event.Strs("errors", result.Errors)
		}

		if result.Exists && len(result.Tags) > 0 {
			preview := result.Tags
			if len(preview) > consoleTagPreview {
				preview = preview[:consoleTagPreview]
			}
			event = event.Strs("available_tags", preview).
				Int("tag_count", len(result.Tags))
		}

		event.Send()
	}

	r.logger.Info("validation_totals").
		Str("separator", "===========================================").
		Int("total_images", batch.TotalImages).
		Int("found", batch.SuccessCount()).
		Int("not_found", batch.FailureCount()).
		Send()
}
