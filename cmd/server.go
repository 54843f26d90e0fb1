package cmd

import (
	"fmt"
	"net/http"

	"habitd/internal/logger"
	"habitd/internal/server"
	"habitd/internal/storage"
	"habitd/internal/storage/bolt"
	"habitd/internal/storage/memory"
	"habitd/internal/storage/sqlite"
	"habitd/internal/tracker"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return startServer()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func openStore() (storage.Store, error) {
	switch cfg.DB.Driver {
	case "", "bolt":
		return bolt.Open(cfg.DB.Path)
	case "sqlite":
		return sqlite.Open(cfg.DB.Path)
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DB.Driver)
	}
}

func startServer() error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	s := server.New(tracker.New(store))

	logger.Info("Starting server", "addr", cfg.ListenAddr, "db_driver", cfg.DB.Driver, "db_path", cfg.DB.Path)
	return http.ListenAndServe(cfg.ListenAddr, s.Router())
}
