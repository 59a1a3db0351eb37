package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xob0t/mocklogo/pkg/preset"
)

func newInspectCmd() *cobra.Command {
	var presetPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the geometry a preset produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			p, warnings, err := preset.Load(presetPath)
			if err != nil {
				return err
			}
			warnings = append(warnings, preset.Validate(p)...)

			out, err := preset.Describe(p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			for _, w := range warnings {
				logger.Warn(w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&presetPath, "preset", "", "TOML or JSON preset file")
	_ = cmd.MarkFlagRequired("preset")
	return cmd
}

func newInitCmd() *cobra.Command {
	var (
		format string
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := preset.Example(format)
			if err != nil {
				return err
			}
			if output == "" {
				output = "preset." + format
			}
			if !force {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", output)
				} else if !errors.Is(err, os.ErrNotExist) {
					return err
				}
			}
			if err := os.WriteFile(output, []byte(content), 0644); err != nil {
				return fmt.Errorf("write preset: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", output)
			fmt.Fprintf(cmd.OutOrStdout(), "Run: mocklogo generate -o logo.png --preset %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "preset format: toml or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default preset.<format>)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
