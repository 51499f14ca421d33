package types

import "time"

type ValidationResult struct {
	Image      string                 `json:"image"`
	Exists     bool                   `json:"exists"`
	Registry   string                 `json:"registry"`
	Repository string                 `json:"repository"`
	Tag        string                 `json:"tag"`
	Metadata   map[string]interface{} `json:"metadata"`
	Tags       []string               `json:"tags"`
	Errors     []string               `json:"errors"`
}

type BatchResult struct {
	Timestamp   time.Time                    `json:"timestamp"`
	TotalImages int                          `json:"total_images"`
	Results     map[string]*ValidationResult `json:"results"`
}

func (b *BatchResult) SuccessCount() int {
	count := 0
	for _, result := range b.Results {
		if result.Exists {
			count++
		}
	}
	return count
}

func (b *BatchResult) FailureCount() int {
	return b.TotalImages - b.SuccessCount()
}
