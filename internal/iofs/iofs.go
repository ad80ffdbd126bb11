package iofs

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gnames/puyadb/pkg/config"
	"github.com/joho/godotenv"
)

//go:embed config.yaml
var ConfigYAML string

// EnvFile is the dotenv file name looked up in the working directory.
const EnvFile = ".env"

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// LoadEnvFile reads .env from dir into the process environment.
// Variables that are already set keep their values. It returns the
// path of the loaded file, or an empty string if there is no file.
func LoadEnvFile(dir string) (string, error) {
	path := filepath.Join(dir, EnvFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", LoadEnvFileError(path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return "", LoadEnvFileError(path, err)
	}
	return path, nil
}
