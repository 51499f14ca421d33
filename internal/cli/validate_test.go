package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinfinalboss/spyglass/internal/config"
	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/internal/webhook"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

func setupCLIState(t *testing.T) {
	t.Helper()
	cfg = config.GetDefaultConfig()
	log = logger.NewTest()
}

func TestRunValidation_RejectsMissingToken(t *testing.T) {
	setupCLIState(t)

	err := runValidation(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), CommandToken)
}

func TestRunValidation_RejectsUnknownCommand(t *testing.T) {
	setupCLIState(t)

	err := runValidation([]string{"nginx:latest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nginx:latest")
	assert.Contains(t, err.Error(), CommandToken)
}

func TestRunValidation_RejectsTokenWithoutImages(t *testing.T) {
	setupCLIState(t)

	err := runValidation([]string{CommandToken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nenhuma imagem")
}

func TestCommandToken_Value(t *testing.T) {
	assert.Equal(t, "!docker-image-validation", CommandToken)
}

func TestValidateImages_NotifiesDiscordOnSaveFailure(t *testing.T) {
	setupCLIState(t)

	registryServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer registryServer.Close()
	host := strings.TrimPrefix(registryServer.URL, "http://")

	var received []webhook.DiscordMessage
	discordServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var message webhook.DiscordMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&message))
		received = append(received, message)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer discordServer.Close()

	cfg.Registries = []types.RegistryConfig{
		{Name: "test", Host: host, Insecure: true},
	}
	cfg.Webhooks.Discord = types.DiscordWebhookConfig{
		Enabled: true,
		URL:     discordServer.URL,
		Name:    "Spyglass 🔭",
	}

	outputFile = filepath.Join(t.TempDir(), "missing", "results.json")
	defer func() { outputFile = "" }()

	err := validateImages(context.Background(), []string{host + "/team/app:v1"})
	require.Error(t, err)

	require.Len(t, received, 3)
	require.Len(t, received[2].Embeds, 1)
	assert.Contains(t, received[2].Embeds[0].Title, "ERRO")
	assert.Contains(t, received[2].Embeds[0].Description, "salvar resultados")
}
