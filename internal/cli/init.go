package cli

import (
	"os"
	"path/filepath"

	"github.com/kevinfinalboss/spyglass/internal/logger"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Inicializa configuração do Spyglass",
	Long:  "Cria arquivo de configuração inicial para o Spyglass",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if log == nil {
			log = logger.New()
		}

		log.Info("app_started").
			Str("version", "v0.1.0").
			Str("operation", "init").
			Send()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Error("operation_failed").Err(err).Send()
		return err
	}

	configDir := filepath.Join(home, ".spyglass")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		log.Error("operation_failed").Err(err).Send()
		return err
	}

	exampleConfig := `# Registries privados que exigem credenciais para a consulta de manifest
registries:
  - name: "my-registry"
    host: "registry.company.com:5000"
    username: ""
    password: ""
    insecure: false
  # - name: "my-ecr"
  #   host: "123456789012.dkr.ecr.us-east-1.amazonaws.com"
  #   profiles: ["default"]

kubernetes:
  context: ""  # Deixe vazio para usar o contexto atual
  namespaces: []  # Deixe vazio para escanear todos os namespaces

settings:
  language: "pt-BR"  # pt-BR, en-US, es-ES
  log_level: "info"  # debug, info, warn, error

# Configuração para o scan de cluster
image_detection:
  # Registries que você considera privados e não quer validar
  custom_private_registries: []

  # Registries para ignorar completamente
  ignore_registries:
    - "localhost"
    - "127.0.0.1"

webhooks:
  discord:
    enabled: false
    url: ""
    name: "Spyglass 🔭"
`

	if _, err := os.Stat(configFile); err == nil {
		log.Warn("config_already_exists").Str("file", configFile).Send()
		return nil
	}

	if err := os.WriteFile(configFile, []byte(exampleConfig), 0644); err != nil {
		log.Error("operation_failed").Err(err).Send()
		return err
	}

	log.Info("config_created").Str("file", configFile).Send()
	log.Info("operation_completed").Str("operation", "init").Send()

	return nil
}
