package cli

import (
	"context"
	"fmt"

	"github.com/kevinfinalboss/spyglass/internal/registry"
	"github.com/kevinfinalboss/spyglass/internal/reporter"
	"github.com/kevinfinalboss/spyglass/internal/validator"
	"github.com/kevinfinalboss/spyglass/internal/webhook"
)

func runValidation(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("comando ausente: esperado '%s'", CommandToken)
	}

	if args[0] != CommandToken {
		log.Error("operation_failed").
			Str("command", args[0]).
			Send()
		return fmt.Errorf("comando desconhecido '%s': esperado '%s'", args[0], CommandToken)
	}

	images := args[1:]
	if len(images) == 0 {
		return fmt.Errorf("nenhuma imagem informada")
	}

	return validateImages(context.Background(), images)
}

func validateImages(ctx context.Context, images []string) error {
	resolver := registry.NewResolver(cfg, log)
	engine := validator.NewEngine(resolver, log)

	var discord *webhook.DiscordWebhook
	if cfg.Webhooks.Discord.Enabled && cfg.Webhooks.Discord.URL != "" {
		discord = webhook.NewDiscordWebhook(cfg.Webhooks.Discord, log)
		if err := discord.SendValidationStart(ctx, len(images)); err != nil {
			log.Warn("operation_failed").Err(err).Send()
		}
	}

	batch := engine.ValidateList(ctx, images)

	if discord != nil {
		if err := discord.SendValidationComplete(ctx, batch); err != nil {
			log.Warn("operation_failed").Err(err).Send()
		}
	}

	if outputFile != "" {
		if err := reporter.NewJSONReporter(log).Save(batch, outputFile); err != nil {
			log.Error("operation_failed").Err(err).Send()
			notifyError(ctx, discord, err, "salvar resultados")
			return err
		}
	} else {
		reporter.NewConsoleReporter(log).Print(batch)
	}

	if htmlReport {
		reportPath, err := reporter.NewHTMLReporter(log).GenerateReport(batch)
		if err != nil {
			log.Warn("operation_failed").Err(err).Send()
			notifyError(ctx, discord, err, "gerar relatório HTML")
		} else {
			log.Info("html_report_generated").Str("file", reportPath).Send()
		}
	}

	log.Info("operation_completed").
		Str("operation", "validation").
		Int("total_images", batch.TotalImages).
		Int("found", batch.SuccessCount()).
		Int("not_found", batch.FailureCount()).
		Send()

	return nil
}

func notifyError(ctx context.Context, discord *webhook.DiscordWebhook, err error, operation string) {
	if discord == nil {
		return
	}
	if werr := discord.SendError(ctx, err.Error(), operation); werr != nil {
		log.Warn("operation_failed").Err(werr).Send()
	}
}
