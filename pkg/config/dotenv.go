package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	ferrors "github.com/matzehuels/figscope/pkg/errors"
)

// loadDotEnv reads .env from each directory in order. Variables that are
// already set are never overridden, so the first file to define a variable
// wins and the real environment beats every file.
func loadDotEnv(dirs ...string) ([]string, error) {
	var loaded []string
	seen := make(map[string]bool)
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, ".env")
		if seen[path] {
			continue
		}
		seen[path] = true
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return loaded, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "read %s", path)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}
