// Command glossary is the terminal front end of the term API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"glossary/internal/api"
	"glossary/internal/config"
	"glossary/internal/glossary"
	"glossary/internal/logging"
	"glossary/internal/telemetry"
	"glossary/internal/ui"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, apiURL, logFile string
	cmd := &cobra.Command{
		Use:          "glossary",
		Short:        "Browse and edit glossary terms in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("api-url") {
				cfg.API.BaseURL = apiURL
			}
			// The terminal belongs to the UI, so logs never go to stderr here.
			if cmd.Flags().Changed("log-file") || cfg.Log.File == "" {
				cfg.Log.File = logFile
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ./glossary.yaml when present)")
	cmd.Flags().StringVar(&apiURL, "api-url", api.DefaultBaseURL, "term API base URL")
	cmd.Flags().StringVar(&logFile, "log-file", "glossary.log", "file the UI logs to")
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	tp, err := telemetry.NewProvider(ctx, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("flush traces")
		}
	}()

	client := api.NewClient(cfg.API.BaseURL, api.WithTracer(tp.Tracer("glossary/api")))
	sink := ui.NewChannelSink(64)
	defer sink.Close()
	ctrl := glossary.NewController(client, sink, logger)

	logger.WithField("api", cfg.API.BaseURL).Info("starting glossary")
	model := ui.NewAppModel(ctx, ctrl, sink, logger).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
