package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"leet/internal/table"
)

func newTableCmd(opts *rootOptions) *cobra.Command {
	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Inspect and validate symbol tables",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the selected table as YAML",
		Long: `Prints the table chosen by --table or --preset in the YAML format
accepted by --table, so a preset can be used as a starting point:

  leet table show --preset cheatsheet > mine.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.tableFile()
			if err != nil {
				return err
			}

			data, err := table.Marshal(f)
			if err != nil {
				return fmt.Errorf("failed to marshal table: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a YAML table file and report problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := table.LoadFile(args[0])
			if err != nil {
				return err
			}

			res := table.Validate(f)
			out := cmd.OutOrStdout()

			for _, d := range res.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			opts.logger.Debug("Validated table",
				zap.String("path", args[0]),
				zap.Int("errors", len(res.Errors)),
				zap.Int("warnings", len(res.Warnings)))

			if res.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", args[0], len(res.Errors))
			}

			fmt.Fprintf(out, "%s: ok (%d symbols)\n", args[0], len(f.Symbols))

			return nil
		},
	}

	tableCmd.AddCommand(showCmd, validateCmd)

	return tableCmd
}
