package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// loadDotEnv loads a .env file from the working directory into the process
// environment, matching the deployment contract where each process carries
// its own .env (SERVER_ADDRESS for the client, MONGO_* for the server).
// Variables already present in the environment win; a missing file is not
// an error.
func loadDotEnv() {
	_ = godotenv.Load()
}

// parseEnv populates cfg from environment variables using caarlos0/env.
// Struct fields are mapped via their `env` and `envPrefix` tags defined on
// [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
