package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"skiffadmin/internal/api"
	"skiffadmin/internal/session"
)

// Config holds CLI configuration.
type Config struct {
	APIBaseURL string
	ConfigDir  string
	Serve      bool
	ListenAddr string
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string) (*Config, error) {
	config := &Config{}

	// Load .env files first so env-based defaults work with flag parsing.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	var showVersion bool
	flag.StringVar(&config.APIBaseURL, "api", "", "Skiff API base URL (or set SKIFF_API_BASE_URL env var)")
	flag.StringVar(&config.ConfigDir, "config-dir", "", "Config directory for the stored session (default: ~/.skiffadmin)")
	flag.BoolVar(&config.Serve, "serve", false, "Run the local API gateway instead of the console")
	flag.StringVar(&config.ListenAddr, "listen", ":3000", "Gateway listen address (with -serve)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("skiffadmin " + version)
		os.Exit(0)
	}

	if config.APIBaseURL == "" {
		config.APIBaseURL = os.Getenv("SKIFF_API_BASE_URL")
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = api.DefaultBaseURL
	}

	if config.ConfigDir == "" {
		config.ConfigDir = session.DefaultDir()
	}

	return config, nil
}
