package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mockydog/breeds/internal/config"
	"mockydog/breeds/internal/container"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "dogbreeds",
	Short:         "List dog breeds from the mocked breed API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), container.ScreenHome)
	},
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Fetch the breed list once and show it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), container.ScreenHome)
	},
}

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show application information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), container.ScreenAbout)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default ./config.yaml if present)")
	rootCmd.AddCommand(homeCmd, aboutCmd)
}

func run(ctx context.Context, screen container.Screen) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	app, err := container.New(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	log.Debugf("Configuration loaded, breeds endpoint %s", cfg.API.BreedsURL())

	return app.Run(ctx, screen)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("Application exited with error: %v", err)
	}
}
