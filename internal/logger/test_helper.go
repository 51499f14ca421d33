package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func NewTest() *Logger {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	testLogger := zerolog.New(io.Discard).With().Timestamp().Logger()

	l := &Logger{
		logger:   testLogger,
		language: "en-US",
		messages: testMessages(),
	}

	return l
}

func NewTestWithOutput() *Logger {
	testLogger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	l := &Logger{
		logger:   testLogger,
		language: "en-US",
		messages: testMessages(),
	}

	return l
}

func testMessages() map[string]string {
	return map[string]string{
		"validating_image":      "Validating image",
		"image_exists":          "Image found in registry",
		"image_not_found":       "Image not found in registry",
		"image_check_failed":    "Failed to check image",
		"token_request_failed":  "Failed to obtain registry token",
		"hub_fallback":          "Falling back to the Docker Hub API",
		"metadata_fetch_failed": "Failed to fetch repository metadata",
		"tags_fetch_failed":     "Failed to list repository tags",
		"batch_started":         "Batch validation started",
		"batch_completed":       "Batch validation completed",
		"scanning_namespace":    "Scanning namespace",
		"images_found":          "Images found",
	}
}
