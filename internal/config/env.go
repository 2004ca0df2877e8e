package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the wallet password is prompted at runtime and stored in memory -
// use GetWalletPasswordBytes().
type Config struct {
	Port             string `envconfig:"PORT" default:"8080"`
	ShieldFilePath   string `envconfig:"SHIELD_FILE_PATH" required:"true"`
	IndexerURL       string `envconfig:"INDEXER_URL" default:"http://127.0.0.1:8088/api/v1/graphql"`
	Network          string `envconfig:"NETWORK" default:"test"`
	CompatSingleRole bool   `envconfig:"COMPAT_SINGLE_ROLE" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetShieldFilePath returns path to the .swt file from configuration
func GetShieldFilePath() string {
	return Get().ShieldFilePath
}

// GetIndexerURL returns the ledger indexer GraphQL endpoint
func GetIndexerURL() string {
	return Get().IndexerURL
}

// GetNetwork returns the target network name from configuration
func GetNetwork() string {
	return Get().Network
}

// GetCompatSingleRole reports whether the wallet derives only the external
// spend role, for interoperability with single-role target wallets.
func GetCompatSingleRole() bool {
	return Get().CompatSingleRole
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter wallet password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return nil
}

// GetWalletPasswordBytes returns the password stored in memory (from
// PromptForPassword). Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetWalletPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
