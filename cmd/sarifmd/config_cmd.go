package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/sarifmd/internal/config"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// A broken config file must not prevent writing a fresh one.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	var write, force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			data, err := config.DefaultYAML()
			if err != nil {
				return err
			}
			if !write {
				_, err = a.stdout.Write(data)
				return err
			}
			if _, err := os.Stat(config.FileName); err == nil && !force {
				return usageErrorf("%s already exists (use --force to overwrite)", config.FileName)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", config.FileName, err)
			}
			fmt.Fprintf(a.stderr, "sarifmd: wrote %s\n", config.FileName)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&write, "write", "w", false, "Write "+config.FileName+" in the working directory")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
