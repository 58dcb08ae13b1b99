package config

import (
	"flag"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address string `env:"RUN_ADDRESS" envDefault:"localhost:3000"`
	LogLvl  string `env:"LOG_LVL"     envDefault:"info"`

	// Logistics demo credentials; override via environment in production.
	LogisticAddress string `env:"LOGISTIC_ADDRESS" envDefault:""`
	LogisticStoreID string `env:"LOGISTIC_STORE_ID" envDefault:"3290635"`
	LogisticKey1    string `env:"LOGISTIC_KEY1"     envDefault:"KWWEptKS89EVX2xS"`
	LogisticKey2    string `env:"LOGISTIC_KEY2"     envDefault:"rQw5T7utTGUQXqRK"`

	// AtomicCheckout switches checkout to all-or-nothing stock validation
	// instead of the legacy per-line commit.
	AtomicCheckout bool `env:"CHECKOUT_ATOMIC" envDefault:"false"`
}

func New() *Config {
	godotenv.Load()

	cfg := &Config{}
	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LogisticAddress, "s", cfg.LogisticAddress, "logistics system address")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.BoolVar(&cfg.AtomicCheckout, "atomic-checkout", cfg.AtomicCheckout, "validate the whole cart before decrementing stock")
	flag.Parse()

	if cfg.LogisticAddress != "" && !strings.HasPrefix(cfg.LogisticAddress, "http://") && !strings.HasPrefix(cfg.LogisticAddress, "https://") {
		cfg.LogisticAddress = "http://" + cfg.LogisticAddress
	}

	return cfg
}
