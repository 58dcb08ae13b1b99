package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetFlagsAndArgs() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func setEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "localhost:9000")
	t.Setenv("LOGISTIC_ADDRESS", "localhost:9001")
	t.Setenv("LOG_LVL", "debug")
	t.Setenv("CHECKOUT_ATOMIC", "true")
}

func TestDefaults(t *testing.T) {
	resetFlagsAndArgs()

	cfg := New()

	assert.Equal(t, "localhost:3000", cfg.Address)
	assert.Equal(t, "info", cfg.LogLvl)
	assert.Equal(t, "", cfg.LogisticAddress)
	assert.Equal(t, "3290635", cfg.LogisticStoreID)
	assert.False(t, cfg.AtomicCheckout)
}

func TestNew(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)
	os.Args = []string{
		"cmd",
		"-a", "localhost:8080",
		"-s", "http://localhost:8082",
		"-l", "error",
	}

	cfg := New()

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "http://localhost:8082", cfg.LogisticAddress)
	assert.Equal(t, "error", cfg.LogLvl)
	assert.True(t, cfg.AtomicCheckout)
}

func TestLogisticAddressDefaultProtocol(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)

	t.Setenv("LOGISTIC_ADDRESS", "localhost:8083")

	cfg := New()

	assert.Equal(t, "http://localhost:8083", cfg.LogisticAddress)
	assert.Equal(t, "localhost:9000", cfg.Address)
}
