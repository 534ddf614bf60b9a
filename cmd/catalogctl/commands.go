package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/app"
	"github.com/fekuna/omnipos-catalog-service/internal/node/seed"
	"github.com/fekuna/omnipos-catalog-service/pkg/database"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func newMigrateCmd(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := env.config()
			db, err := database.Open(app.DatabaseConfig(cfg))
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			applied, err := database.Migrate(cmd.Context(), db)
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Schema already up to date.")
				return nil
			}
			for _, v := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", v)
			}
			return nil
		},
	}
}

func newSeedCmd(env *cmdEnv) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a taxonomy from a YAML file",
		Long: `Insert a taxonomy from a YAML file in one transaction.

Nested entries become children of the entry that contains them. Either every
entry is inserted or none is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seed.Load(file)
			if err != nil {
				return err
			}

			a, err := env.app(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			nodes, err := a.Nodes[f.Tree].AddMultipleNodesWithAttributes(cmd.Context(), f.Entries())
			if err != nil {
				for _, e := range multierr.Errors(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %v\n", e)
				}
				return errors.New("seed rejected, nothing was inserted")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d nodes into the %s tree\n", len(nodes), f.Tree)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "taxonomy YAML file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newReindexCmd(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the node search index from the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.app(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if a.Indexer == nil {
				return errors.New("elasticsearch is disabled or unreachable")
			}
			for _, uc := range a.NodeUseCases() {
				count, err := uc.Reindex(cmd.Context())
				if err != nil {
					return fmt.Errorf("reindex %s tree: %w", uc.Tree(), err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "indexed %d %s nodes\n", count, uc.Tree())
			}
			return nil
		},
	}
}

func newPurgeSessionsCmd(env *cmdEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete expired user sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := env.app(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.Sessions.DeleteExpired(cmd.Context(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d expired sessions\n", n)
			return nil
		},
	}
}
