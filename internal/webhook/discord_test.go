package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

func newTestWebhook(url string) *DiscordWebhook {
	return NewDiscordWebhook(types.DiscordWebhookConfig{
		Enabled: true,
		URL:     url,
		Name:    "Spyglass 🔭",
	}, logger.NewTest())
}

func batchWithMissing(missing ...string) *types.BatchResult {
	batch := &types.BatchResult{
		Timestamp:   time.Now(),
		TotalImages: len(missing) + 1,
		Results: map[string]*types.ValidationResult{
			"nginx:latest": {Image: "nginx:latest", Exists: true},
		},
	}
	for _, image := range missing {
		batch.Results[image] = &types.ValidationResult{Image: image, Exists: false}
	}
	return batch
}

func TestDiscordWebhook_SendValidationStart(t *testing.T) {
	var received DiscordMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	webhook := newTestWebhook(server.URL)

	err := webhook.SendValidationStart(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Spyglass 🔭", received.Username)
	require.Len(t, received.Embeds, 1)
	assert.Contains(t, received.Embeds[0].Fields[0].Value, "5 imagens")
}

func TestDiscordWebhook_SendValidationComplete_WithMissing(t *testing.T) {
	var received DiscordMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	webhook := newTestWebhook(server.URL)
	batch := batchWithMissing("myorg/a:v1", "myorg/b:v1", "myorg/c:v1", "myorg/d:v1")

	err := webhook.SendValidationComplete(context.Background(), batch)
	require.NoError(t, err)

	require.Len(t, received.Embeds, 1)
	embed := received.Embeds[0]
	assert.Contains(t, embed.Title, "AUSENTES")
	require.Len(t, embed.Fields, 2)
	assert.Contains(t, embed.Fields[1].Value, "myorg/a:v1")
	assert.Contains(t, embed.Fields[1].Value, "... e mais 1 imagens")
}

func TestDiscordWebhook_SendError_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	webhook := newTestWebhook(server.URL)

	err := webhook.SendError(context.Background(), "timeout", "validação em lote")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDiscordWebhook_GetMissingExamples(t *testing.T) {
	webhook := newTestWebhook("http://localhost")

	t.Run("no missing images", func(t *testing.T) {
		assert.Empty(t, webhook.getMissingExamples(batchWithMissing(), 3))
	})

	t.Run("under the limit lists everything", func(t *testing.T) {
		text := webhook.getMissingExamples(batchWithMissing("b:1", "a:1"), 3)
		assert.Equal(t, "a:1\nb:1", text)
	})

	t.Run("over the limit truncates with a counter", func(t *testing.T) {
		text := webhook.getMissingExamples(batchWithMissing("a:1", "b:1", "c:1", "d:1", "e:1"), 3)
		assert.Equal(t, "a:1\nb:1\nc:1\n... e mais 2 imagens", text)
	})
}
