package config

// DefaultFile is the config file read from the working directory.
const DefaultFile = ".blackstone.yml"

// EnvPrefix prefixes environment overrides: BLACKSTONE_SERVER_PORT sets
// server.port.
const EnvPrefix = "BLACKSTONE_"

// Config is the top-level site configuration, corresponding to .blackstone.yml.
type Config struct {
	SiteName string        `yaml:"site_name" koanf:"site_name"`
	BaseURL  string        `yaml:"base_url" koanf:"base_url"`
	Server   ServerConfig  `yaml:"server" koanf:"server"`
	DataDir  string        `yaml:"data_dir" koanf:"data_dir"`
	Contact  ContactConfig `yaml:"contact" koanf:"contact"`
	Log      LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string `yaml:"host" koanf:"host"`
	Port            int    `yaml:"port" koanf:"port"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ContactConfig controls what happens to contact form submissions.
type ContactConfig struct {
	StoreInquiries bool `yaml:"store_inquiries" koanf:"store_inquiries"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName: "Blackstone Contractors LLC",
		BaseURL:  "http://localhost:8080",
		Server: ServerConfig{
			Host: "",
			Port: 8080,
		},
		DataDir: ".blackstone",
		Contact: ContactConfig{StoreInquiries: true},
		Log:     LogConfig{Level: "info", Format: "json"},
	}
}
