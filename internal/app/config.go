package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/cleancode-kart/internal/domain/discount"
)

// Dispatch modes for tier resolution.
const (
	DispatchSwitch   = "switch"
	DispatchRegistry = "registry"
)

// Report formats.
const (
	ReportLog  = "log"
	ReportJSON = "json"
)

// Config holds the demo configuration, loadable from environment variables
// (CLEANCODE_ prefix), flags, or YAML config files.
type Config struct {
	QuoteAmount string   `default:"100.00" usage:"Amount quoted for every tier" flag:"quote-amount"`
	QuoteTiers  []string `default:"REGULAR,PREMIUM,VIP,GOLD" usage:"Tier labels to quote; unknown labels get the fallback policy" flag:"quote-tiers"`
	Dispatch    string   `default:"registry" usage:"Tier dispatch mode: switch or registry"`
	Report      string   `default:"log" usage:"Report format: log or json"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files and validates it.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CLEANCODE",
		Files:     []string{"config.yaml", "/etc/cleancode/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated fields and the quote amount.
func (c *Config) Validate() error {
	if _, err := c.Amount(); err != nil {
		return err
	}
	switch c.Dispatch {
	case DispatchSwitch, DispatchRegistry:
	default:
		return errors.Errorf("unknown dispatch mode %q", c.Dispatch)
	}
	switch c.Report {
	case ReportLog, ReportJSON:
	default:
		return errors.Errorf("unknown report format %q", c.Report)
	}
	return nil
}

// Amount parses QuoteAmount.
func (c *Config) Amount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(c.QuoteAmount)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "parse quote amount %q", c.QuoteAmount)
	}
	if amount.IsNegative() {
		return decimal.Zero, errors.Errorf("quote amount %s is negative", amount)
	}
	return amount, nil
}

// Resolver returns the tier resolver selected by Dispatch.
func (c *Config) Resolver() discount.Resolver {
	if c.Dispatch == DispatchSwitch {
		return discount.SwitchResolver{}
	}
	return discount.NewRegistry()
}
