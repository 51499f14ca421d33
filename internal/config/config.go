package config

import (
	"os"
	"path/filepath"

	"github.com/kevinfinalboss/spyglass/pkg/types"
	"gopkg.in/yaml.v3"
)

func Load(configFile string) (*types.Config, error) {
	explicit := configFile != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configFile = filepath.Join(home, ".spyglass", "config.yaml")
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		// A ausência do arquivo padrão é normal; um caminho pedido
		// explicitamente precisa existir.
		if os.IsNotExist(err) && !explicit {
			return GetDefaultConfig(), nil
		}
		return nil, err
	}

	var config types.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	return &config, nil
}

func GetDefaultConfig() *types.Config {
	config := &types.Config{
		Registries: []types.RegistryConfig{},
		Kubernetes: types.KubernetesConfig{
			Context:    "",
			Namespaces: []string{},
		},
		Settings: types.SettingsConfig{
			Language: "pt-BR",
			LogLevel: "info",
		},
		ImageDetection: types.ImageDetectionConfig{
			CustomPrivateRegistries: []string{},
			IgnoreRegistries:        []string{"localhost", "127.0.0.1"},
		},
		Webhooks: types.WebhookConfig{
			Discord: types.DiscordWebhookConfig{
				Enabled: false,
				URL:     "",
				Name:    "Spyglass 🔭",
			},
		},
	}

	return config
}

func applyDefaults(config *types.Config) {
	if config.Settings.Language == "" {
		config.Settings.Language = "pt-BR"
	}
	if config.Settings.LogLevel == "" {
		config.Settings.LogLevel = "info"
	}
	if len(config.ImageDetection.IgnoreRegistries) == 0 {
		config.ImageDetection.IgnoreRegistries = []string{"localhost", "127.0.0.1"}
	}
	if config.Webhooks.Discord.Name == "" {
		config.Webhooks.Discord.Name = "Spyglass 🔭"
	}
}

func Save(config *types.Config, configFile string) error {
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		configDir := filepath.Join(home, ".spyglass")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return err
		}
		configFile = filepath.Join(configDir, "config.yaml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configFile, data, 0644)
}
