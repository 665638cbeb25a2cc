package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heysubinoy/pitara/internal/logging"
	"github.com/heysubinoy/pitara/internal/repl"
	"github.com/heysubinoy/pitara/internal/store"
	"github.com/heysubinoy/pitara/pkg/config"
)

func main() {
	root := &cobra.Command{
		Use:   "pitara",
		Short: "An embeddable in-memory key-value store",
	}

	root.AddCommand(newReplCmd())
	root.AddCommand(newDemoCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newReplCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session against a fresh store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

			backend, err := store.Open(cfg.Backend, cfg.Shards)
			if err != nil {
				return err
			}
			instrumented := store.NewInstrumentedStore(backend)

			log.WithField("backend", cfg.Backend).Info("store ready")
			return repl.New(instrumented, os.Stdin, os.Stdout, log).Run()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	return cmd
}

// newDemoCmd runs the canonical session: set a key, read it back,
// delete it, and show that the second read reports absence.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted set/get/delete/get session",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewMemStore()
			out := cmd.OutOrStdout()

			if err := st.Set("name", "Alice"); err != nil {
				return err
			}
			fmt.Fprintln(out, "Set 'name' = 'Alice'")

			printGet(out, st, "name")

			if err := st.Delete("name"); err != nil {
				return err
			}
			fmt.Fprintln(out, "Deleted 'name'")

			printGet(out, st, "name")
			return nil
		},
	}
}

func printGet(out io.Writer, st *store.MemStore, key string) {
	if value, found := st.Get(key); found {
		fmt.Fprintln(out, value)
	} else {
		fmt.Fprintf(out, "Key '%s' not found\n", key)
	}
}
