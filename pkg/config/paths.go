package config

import (
	"os"
	"path/filepath"
)

func defaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".bizdash.json"
	}
	return filepath.Join(dir, "bizdash", "storage.json")
}
