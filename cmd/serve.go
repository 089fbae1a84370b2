package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/renatorak20/MyShowListBE/internal/api"
	"github.com/renatorak20/MyShowListBE/internal/config"
	"github.com/renatorak20/MyShowListBE/internal/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MyShowList server",
	Long:  `Start the MyShowList server to handle catalog, watch-list and comment requests.`,
	Example: `myshowlist serve --config config.yml
myshowlist serve -c /path/to/config.yml --log-level debug
`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func startServer(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if rootCmdPersistentFlags.LogLevel == "" {
		setLogLevel(cfg.LogLevel)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// The genre taxonomy must be in place before any request is served.
	if err := db.SyncGenres(ctx); err != nil {
		log.Fatalf("failed to sync genres: %v", err)
	}

	server, err := api.New(cfg, db)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	go func() {
		log.Info("starting API server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("API server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("myshowlist started successfully")
	<-c
	log.Info("shutting down gracefully...")

	cancel()
	if err := db.Close(); err != nil {
		log.Error("failed to close database", "error", err)
	}
}
