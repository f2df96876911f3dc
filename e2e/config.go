package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ExchangeAddr string `envconfig:"EXCHANGE_ADDR"`
	// Demo participants, as seeded by `cmd/tester -seed`
	SenderID       string `envconfig:"E2E_SENDER_ID"`
	RecipientID    string `envconfig:"E2E_RECIPIENT_ID"`
	RecipientEmail string `envconfig:"E2E_RECIPIENT_EMAIL" default:"bob@example.com"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
