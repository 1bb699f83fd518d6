package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	configDir       = ".degreeplan"
	programPathKey  = "program.path"
	programFile     = "program.toml"
	plansPathKey    = "plans.path"
	plansFile       = "plans.toml"
	dataFileMode    = 0o600
	dataDirMode     = 0o700
	tempFilePattern = ".degreeplan-*.toml.tmp"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// ConfigDir returns the directory holding config.toml and the default data files.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, configDir), nil
}

// LoadConfig reads the optional config file into cfg. A missing file is not an error.
func LoadConfig(cfg *viper.Viper) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

func resolvePath(cfg *viper.Viper, key, fileName string) (string, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	cfg.SetDefault(key, filepath.Join(dir, fileName))

	path := cfg.GetString(key)
	if path == "" {
		return "", fmt.Errorf("%s is empty", key)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}
	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// readTOMLFile decodes path into out. It reports false when the file does not exist.
func readTOMLFile(path, label string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s file: %w", label, err)
	}

	if err := toml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s file: %w", label, err)
	}
	return true, nil
}

func writeTOMLFile(path string, file any) error {
	if err := os.MkdirAll(filepath.Dir(path), dataDirMode); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Chmod(dataFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(path, dataFileMode); err != nil {
		return fmt.Errorf("chmod file: %w", err)
	}

	return nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
