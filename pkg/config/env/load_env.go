package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. ENV_PATH overrides
// the default path. Credentials live in the environment, so a missing file is
// only an error when one was explicitly requested.
func LoadDotEnv(defaultPath string) error {
	envPath := defaultPath
	explicit := false
	if p := os.Getenv("ENV_PATH"); p != "" {
		envPath = p
		explicit = true
	}

	if err := godotenv.Load(envPath); err != nil {
		if explicit {
			slog.Error("Failed to load environment file", "path", envPath, "error", err)
			return err
		}
		slog.Debug("Skipping .env, file not present", "path", envPath)
	}

	return nil
}
