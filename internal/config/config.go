// Package config carries the process configuration, resolved from
// environment variables, and derives the default storage locations from the
// OS per-user data directory.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

const (
	appDataFolderName = "TaiwuBackup"
	backupFolderName  = "BackupData"
	logFolderName     = "logs"
)

// ErrBackupRootNotAvailable means the per-user data directory convention
// could not be resolved on this machine.
var ErrBackupRootNotAvailable = errors.New("default backup root not available")

// Config is the process configuration. Empty root fields mean "resolve the
// platform default".
type Config struct {
	GameRoot   string `env:"TAIWU_BACKUP_GAME_ROOT"`
	BackupRoot string `env:"TAIWU_BACKUP_ROOT"`
	LogLevel   string `env:"TAIWU_BACKUP_LOG_LEVEL" envDefault:"info"`
	LogDir     string `env:"TAIWU_BACKUP_LOG_DIR"`
}

// FromEnv reads the configuration from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DefaultBackupRoot derives the backup destination from the OS per-user data
// directory, e.g. ~/.local/share/TaiwuBackup/BackupData.
func DefaultBackupRoot() (string, error) {
	if xdg.DataHome == "" {
		return "", ErrBackupRootNotAvailable
	}
	return filepath.Join(xdg.DataHome, appDataFolderName, backupFolderName), nil
}

// DefaultLogDir returns the log folder next to the backup data.
func DefaultLogDir() (string, error) {
	if xdg.DataHome == "" {
		return "", ErrBackupRootNotAvailable
	}
	return filepath.Join(xdg.DataHome, appDataFolderName, logFolderName), nil
}
