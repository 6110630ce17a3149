package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/conf/v3"
	"github.com/spf13/cobra"

	"github.com/rohits-web03/chainnotes/internal/config"
	"github.com/rohits-web03/chainnotes/internal/logging"
)

// @title ChainNotes API
// @version 1.0
// @description Notes with a recycle bin, todos and ledger records.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

const service = "chainnotes"

var rootCmd = &cobra.Command{
	Use:           "chainnotes",
	Short:         "Notes, todos and ledger records over HTTP",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, sweepCmd)
}

// setup loads configuration and builds the logger every command shares.
func setup() (*config.Config, logging.Logger, error) {
	cfg, help, err := config.Load()
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			os.Exit(0)
		}
		return nil, nil, fmt.Errorf("parse config: %w", err)
	}

	log, err := logging.New(cfg.LogBackend, service)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
