package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/felix-ide/felix/internal/app"
	"github.com/felix-ide/felix/internal/config"
	"github.com/felix-ide/felix/internal/protocol"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "felix-ast",
	Short: "felix-ast — Python AST extraction worker",
	Long:  "Parses Python source into a serializable syntax tree, extracts imports, and resolves module locations. One-shot, stdio worker, or socket daemon.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .felix-ast.yaml in cwd or $HOME)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(extractImportsCmd)
	rootCmd.AddCommand(resolveModuleCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(daemonCmd)
}

// newLogger builds the process logger. Stdout carries nothing but response
// frames, so all logging goes to stderr.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// newApp loads config and wires a worker app for batch and serve commands.
func newApp() (*app.App, *config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(app.Options{
		SearchPaths:   cfg.SearchPaths,
		CacheSize:     cfg.CacheSize,
		MaxFrameBytes: cfg.MaxFrameBytes,
		Logger:        newLogger(),
	})
	if err != nil {
		return nil, nil, err
	}
	return a, cfg, nil
}

// runBatch dispatches one request and prints its response frame to stdout.
// A reported parse failure is a valid outcome, so the process still exits 0;
// only invocation-level misuse is a process failure.
func runBatch(req protocol.Request) error {
	a, _, err := newApp()
	if err != nil {
		return err
	}
	resp := a.Dispatch(req)
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
