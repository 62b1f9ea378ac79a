package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"gatepost/internal/app/client"
	"gatepost/internal/app/client/config"
	serverconfig "gatepost/internal/app/server/config"
	"gatepost/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "gatepost",
	Short: "Gatepost - checkpoint transit registry client",
	Long: `Gatepost records vehicle and personnel entry and exit events at a
checkpoint. Records live in a remote registry; this client registers new
transits, stamps exits, searches and filters the registry, and exports it
as an xlsx workbook.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	env := cfg.Env
	if debug {
		env = serverconfig.EnvLocal
	}
	log = logger.New(env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server address override (host:port)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
