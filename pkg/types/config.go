package types

type RegistryConfig struct {
	Name      string   `yaml:"name"`
	Host      string   `yaml:"host,omitempty"`
	Username  string   `yaml:"username,omitempty"`
	Password  string   `yaml:"password,omitempty"`
	Insecure  bool     `yaml:"insecure,omitempty"`
	Region    string   `yaml:"region,omitempty"`
	AccountID string   `yaml:"account_id,omitempty"`
	Profiles  []string `yaml:"profiles,omitempty"`
	AccessKey string   `yaml:"access_key,omitempty"`
	SecretKey string   `yaml:"secret_key,omitempty"`
}

type KubernetesConfig struct {
	Context    string   `yaml:"context"`
	Namespaces []string `yaml:"namespaces"`
}

type SettingsConfig struct {
	Language string `yaml:"language"`
	LogLevel string `yaml:"log_level"`
}

type ImageDetectionConfig struct {
	CustomPrivateRegistries []string `yaml:"custom_private_registries"`
	IgnoreRegistries        []string `yaml:"ignore_registries"`
}

type DiscordWebhookConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Name    string `yaml:"name"`
	Avatar  string `yaml:"avatar,omitempty"`
}

type WebhookConfig struct {
	Discord DiscordWebhookConfig `yaml:"discord"`
}

type Config struct {
	Registries     []RegistryConfig     `yaml:"registries"`
	Kubernetes     KubernetesConfig     `yaml:"kubernetes"`
	Settings       SettingsConfig       `yaml:"settings"`
	ImageDetection ImageDetectionConfig `yaml:"image_detection"`
	Webhooks       WebhookConfig        `yaml:"webhooks"`
}
