package config

const defaultPrecision = 3

type Config struct {
	Version bool
	Verbose bool

	Environment string
	ConfigPath  string
	DataPath    string
	Namespace   string
	Precision   int

	SlackWebhookUrl string
	SlackChannel    string
}

func NewWithDefaults() Config {
	return Config{
		Precision: defaultPrecision,
	}
}

func (c Config) LogLevel() string {
	if c.Verbose {
		return "debug"
	}

	return "info"
}
