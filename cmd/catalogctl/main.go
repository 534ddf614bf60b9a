// Command catalogctl runs maintenance tasks against the catalog database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/app"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Maintenance tasks for the catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log connection details")

	env := &cmdEnv{verbose: &verbose}
	root.AddCommand(
		newMigrateCmd(env),
		newSeedCmd(env),
		newReindexCmd(env),
		newPurgeSessionsCmd(env),
	)
	return root
}

// cmdEnv builds the dependencies a command needs once its flags are parsed.
type cmdEnv struct {
	verbose *bool
}

func (e *cmdEnv) config() *config.Config {
	return config.LoadEnv()
}

func (e *cmdEnv) logger(cfg *config.Config) logger.ZapLogger {
	if !*e.verbose {
		return logger.NewNop()
	}
	return logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     true,
		Encoding:          "console",
		Level:             cfg.Logger.Level,
		DisableStacktrace: true,
	})
}

func (e *cmdEnv) app(ctx context.Context) (*app.App, error) {
	cfg := e.config()
	return app.New(ctx, cfg, e.logger(cfg))
}
