package config

import (
	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/period"
)

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Dir:     "./data",
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 4250,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Quotes: QuotesConfig{
			Provider: "yahoo",
			Timeout:  "15s",
		},
		Portfolio: PortfolioConfig{
			RebalanceThreshold: wealthguard.DefaultRebalanceThreshold,
			MonthlyMin:         wealthguard.DefaultStrategy.MonthlyMin,
			Markup:             wealthguard.DefaultMarkup,
			Locale:             string(period.DefaultLocale),
		},
		Agent: AgentConfig{
			Model: "gemini-2.5-flash",
		},
	}
}
