// Package main provides the bakeshop binary entry point: an in-memory
// storefront with an admin surface, served over HTTP.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"bakeshop/config"
	"bakeshop/store"
	"bakeshop/web"
)

const Version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bakeshop",
		Short:         "In-memory storefront demo with an admin surface",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newSnapshotCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if configPath != "" {
				loaded, err := config.LoadFromFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cfg.ApplyEnv()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			state := store.NewSeededState(cfg.Checkout.Delay)
			if cfg.Snapshot.File != "" {
				data, err := os.ReadFile(cfg.Snapshot.File)
				if err != nil {
					return fmt.Errorf("read snapshot file: %w", err)
				}
				if err := state.Snapshot.Import(data); err != nil {
					return fmt.Errorf("apply snapshot file: %w", err)
				}
				log.Printf("state restored from %s", cfg.Snapshot.File)
			}

			return web.NewServer(state, cfg).ListenAndServe()
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	return cmd
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Work with export documents offline",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a file is a valid export document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			info, err := store.Inspect(data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d products, %d orders, homeContent=%t\n",
				args[0], info.Products, info.Orders, info.HasContent)
			return nil
		},
	})
	return cmd
}
