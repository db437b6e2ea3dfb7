package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables that provide flag defaults.
const (
	envConfig   = "BLOCKFALL_CONFIG"
	envLogLevel = "BLOCKFALL_LOG_LEVEL"
	envSeed     = "BLOCKFALL_SEED"
)

// applyEnv loads .env from the working directory, if present, and fills
// flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv(envConfig); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if v := os.Getenv(envLogLevel); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
	if v := os.Getenv(envSeed); v != "" && !flags.Changed("seed") {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envSeed, v, err)
		}
		flagSeed = seed
	}
	return nil
}
