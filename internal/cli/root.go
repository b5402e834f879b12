// Package cli implements the taiwubackup commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/taiwu-tools/taiwubackup/internal/backupmgr"
	"github.com/taiwu-tools/taiwubackup/internal/config"
	"github.com/taiwu-tools/taiwubackup/internal/gameroot"
	"github.com/taiwu-tools/taiwubackup/internal/logging"
)

var (
	gameRootFlag   string
	backupRootFlag string
	logLevelFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "taiwubackup",
	Short: "Continuous backups for The Scroll of Taiwu save files",
	Long: "taiwubackup mirrors every change to the game's world saves into a " +
		"timestamped archive, so a corrupted or overwritten save can always be " +
		"recovered by hand. Flags win over TAIWU_BACKUP_* environment variables.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&gameRootFlag, "game-root", "",
		"Game installation directory (default: located via the Steam library)")
	rootCmd.PersistentFlags().StringVar(&backupRootFlag, "backup-root", "",
		"Backup destination (default: per-user data directory)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn or error")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// setup resolves configuration, logging and the manager shared by every
// command. Resolution failures here are fatal for the process: without a
// game root and a backup root the premise of the tool does not hold.
func setup() (*backupmgr.Manager, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if gameRootFlag != "" {
		cfg.GameRoot = gameRootFlag
	}
	if backupRootFlag != "" {
		cfg.BackupRoot = backupRootFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	if cfg.LogDir == "" {
		if cfg.LogDir, err = config.DefaultLogDir(); err != nil {
			return nil, err
		}
	}
	log, err := logging.Setup(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return nil, err
	}

	gameRoot, err := gameroot.Resolve(cfg.GameRoot)
	if err != nil {
		return nil, err
	}

	backupRoot := cfg.BackupRoot
	if backupRoot == "" {
		if backupRoot, err = config.DefaultBackupRoot(); err != nil {
			return nil, err
		}
	}

	log.Info("resolved roots", "game_root", gameRoot, "backup_root", backupRoot)

	return backupmgr.NewManager(backupmgr.Config{
		GameRoot:   gameRoot,
		BackupRoot: backupRoot,
	}, log), nil
}
