package cli

import (
	"fmt"

	"github.com/kevinfinalboss/spyglass/internal/config"
	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/kevinfinalboss/spyglass/pkg/types"
	"github.com/spf13/cobra"
)

// CommandToken é o comando literal que precisa ser o primeiro argumento
// posicional da validação.
const CommandToken = "!docker-image-validation"

var (
	cfgFile    string
	language   string
	logLevel   string
	outputFile string
	htmlReport bool
	verbose    bool
	log        *logger.Logger
	cfg        *types.Config
)

var rootCmd = &cobra.Command{
	Use:   "spyglass " + CommandToken + " <imagem> [imagem...]",
	Short: "Valida a existência de imagens Docker em registries",
	Long: `Spyglass verifica se imagens Docker existem nos seus registries de origem
e enriquece o resultado com metadados e tags do Docker Hub.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load(cfgFile)
		if err != nil && cfgFile != "" {
			return fmt.Errorf("erro ao carregar configuração: %w", err)
		}

		if cfg == nil {
			cfg = config.GetDefaultConfig()
		}

		if language != "" {
			cfg.Settings.Language = language
		}
		if logLevel != "" {
			cfg.Settings.LogLevel = logLevel
		}
		if verbose {
			cfg.Settings.LogLevel = "debug"
		}

		log = logger.NewWithConfig(cfg)

		if cfgFile == "" {
			log.Debug("config_not_found").Send()
		} else {
			log.Info("config_loaded").Str("file", cfgFile).Send()
		}

		log.Info("app_started").
			Str("version", "v0.1.0").
			Str("language", cfg.Settings.Language).
			Send()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidation(args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "arquivo de configuração (padrão: ~/.spyglass/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "idioma dos logs (pt-BR, en-US, es-ES)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "nível de log (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "arquivo de saída para os resultados (formato JSON)")
	rootCmd.PersistentFlags().BoolVar(&htmlReport, "report", false, "gerar relatório HTML em ~/.spyglass/reports")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "saída detalhada")

	addSubcommands()
}

func addSubcommands() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initCmd)
}
