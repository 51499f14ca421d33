package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
)

type DiscordWebhook struct {
	url    string
	name   string
	avatar string
	logger *logger.Logger
	client *http.Client
}

type DiscordMessage struct {
	Username  string         `json:"username,omitempty"`
	AvatarURL string         `json:"avatar_url,omitempty"`
	Content   string         `json:"content,omitempty"`
	Embeds    []DiscordEmbed `json:"embeds,omitempty"`
}

type DiscordEmbed struct {
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	Color       int                 `json:"color,omitempty"`
	Fields      []DiscordEmbedField `json:"fields,omitempty"`
	Footer      *DiscordEmbedFooter `json:"footer,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type DiscordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type DiscordEmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

func NewDiscordWebhook(config types.DiscordWebhookConfig, log *logger.Logger) *DiscordWebhook {
	name := config.Name
	if name == "" {
		name = "Spyglass 🔭"
	}

	return &DiscordWebhook{
		url:    config.URL,
		name:   name,
		avatar: config.Avatar,
		logger: log,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *DiscordWebhook) SendValidationStart(ctx context.Context, totalImages int) error {
	embed := DiscordEmbed{
		Title:       "🔭 VALIDAÇÃO INICIADA",
		Description: "Iniciando validação de imagens Docker",
		Color:       0x0099ff,
		Fields: []DiscordEmbedField{
			{
				Name:   "📦 Imagens",
				Value:  fmt.Sprintf("%d imagens para validar", totalImages),
				Inline: true,
			},
		},
		Footer: &DiscordEmbedFooter{
			Text: "Spyglass Validation Engine",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	message := DiscordMessage{
		Username:  d.name,
		AvatarURL: d.avatar,
		Embeds:    []DiscordEmbed{embed},
	}

	return d.send(ctx, message)
}

func (d *DiscordWebhook) SendValidationComplete(ctx context.Context, batch *types.BatchResult) error {
	operation := "✅ VALIDAÇÃO CONCLUÍDA"
	color := 0x00ff00

	if batch.FailureCount() > 0 {
		operation = "⚠️ VALIDAÇÃO COM IMAGENS AUSENTES"
		color = 0xff6600
	}

	description := fmt.Sprintf("Processo finalizado: %d encontradas", batch.SuccessCount())
	if batch.FailureCount() > 0 {
		description += fmt.Sprintf(", %d não encontradas", batch.FailureCount())
	}

	fields := []DiscordEmbedField{
		{
			Name: "📊 Resultados",
			Value: fmt.Sprintf("**Total:** %d\n**✅ Encontradas:** %d\n**❌ Não encontradas:** %d",
				batch.TotalImages, batch.SuccessCount(), batch.FailureCount()),
			Inline: true,
		},
	}

	missingExamples := d.getMissingExamples(batch, 3)
	if missingExamples != "" {
		fields = append(fields, DiscordEmbedField{
			Name:   "❌ Imagens Ausentes",
			Value:  "```\n" + missingExamples + "\n```",
			Inline: false,
		})
	}

	embed := DiscordEmbed{
		Title:       operation,
		Description: description,
		Color:       color,
		Fields:      fields,
		Footer: &DiscordEmbedFooter{
			Text: "Spyglass Validation Engine",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	message := DiscordMessage{
		Username:  d.name,
		AvatarURL: d.avatar,
		Embeds:    []DiscordEmbed{embed},
	}

	return d.send(ctx, message)
}

func (d *DiscordWebhook) SendError(ctx context.Context, errorMsg string, operation string) error {
	embed := DiscordEmbed{
		Title:       "❌ ERRO NA VALIDAÇÃO",
		Description: fmt.Sprintf("Falha durante: %s", operation),
		Color:       0xff0000,
		Fields: []DiscordEmbedField{
			{
				Name:   "💥 Erro",
				Value:  "```\n" + errorMsg + "\n```",
				Inline: false,
			},
		},
		Footer: &DiscordEmbedFooter{
			Text: "Spyglass Validation Engine",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	message := DiscordMessage{
		Username:  d.name,
		AvatarURL: d.avatar,
		Embeds:    []DiscordEmbed{embed},
	}

	return d.send(ctx, message)
}

func (d *DiscordWebhook) send(ctx context.Context, message DiscordMessage) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("falha ao serializar mensagem Discord: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("falha ao criar requisição Discord: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("falha ao enviar webhook Discord: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Discord retornou status %d", resp.StatusCode)
	}

	d.logger.Debug("discord_webhook_sent").
		Int("status_code", resp.StatusCode).
		Send()

	return nil
}

func (d *DiscordWebhook) getMissingExamples(batch *types.BatchResult, limit int) string {
	missing := make([]string, 0)
	for image, result := range batch.Results {
		if !result.Exists {
			missing = append(missing, image)
		}
	}
	sort.Strings(missing)

	if len(missing) == 0 {
		return ""
	}

	examples := missing
	if len(examples) > limit {
		examples = examples[:limit]
	}

	text := strings.Join(examples, "\n")
	if len(missing) > limit {
		text += fmt.Sprintf("\n... e mais %d imagens", len(missing)-limit)
	}

	return text
}
