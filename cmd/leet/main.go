// Package main provides the CLI entrypoint for leet.
//
// leet transliterates text into leet speak:
//   - Arguments are joined with spaces, transformed and printed
//   - Without arguments, stdin is streamed to stdout
//   - Tables can be picked from the built-in presets or loaded from YAML
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/transform"

	"leet/internal/leet"
	"leet/internal/table"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	verbose   bool
	tablePath string
	preset    string
	policy    string
	strict    bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "leet [text...]",
		Short: "Transliterate text into leet speak",
		Long: `leet replaces every letter and digit with its leet speak glyph sequence.

Letters are matched case-insensitively, whitespace is copied as is, and
characters without a table entry pass through unchanged unless --strict
is given.

With no arguments, leet reads standard input until EOF. Input is
streamed, so with --strict everything before the first unmapped
character has already been written to standard output when leet stops
with an error. Given as arguments, the text is checked in full first and
nothing is printed on error.

Example:
  leet Hola Johnnatan
  echo "Hola Johnnatan" | leet --preset cheatsheet`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zapcore.WarnLevel
			if opts.verbose {
				level = zapcore.DebugLevel
			}

			core := zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
				level,
			)
			opts.logger = zap.New(core)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, opts, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVarP(&opts.tablePath, "table", "t", "", "Load the symbol table from a YAML file")
	flags.StringVarP(&opts.preset, "preset", "p", table.DefaultPreset,
		"Built-in table ("+strings.Join(table.PresetNames(), ", ")+")")
	cmd.Flags().StringVar(&opts.policy, "policy", "pass-through", "Unmapped character policy (pass-through, strict)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Shorthand for --policy strict")

	cmd.AddCommand(newTableCmd(opts))

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// runTransform transliterates the joined arguments, or stdin when there are none.
func runTransform(cmd *cobra.Command, opts *rootOptions, args []string) error {
	tr, err := opts.transliterator()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		out, err := tr.Transform(strings.Join(args, " "))
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

		return err
	}

	n, err := io.Copy(cmd.OutOrStdout(), transform.NewReader(cmd.InOrStdin(), tr.Transformer()))
	if err != nil {
		return fmt.Errorf("failed to transliterate input: %w", err)
	}

	opts.logger.Debug("Transliterated stdin", zap.Int64("bytes_written", n))

	return nil
}

func (o *rootOptions) transliterator() (*leet.Transliterator, error) {
	policy, err := leet.ParsePolicy(o.policy)
	if err != nil {
		return nil, err
	}

	if o.strict {
		policy = leet.PolicyStrict
	}

	symbols, err := o.symbols()
	if err != nil {
		return nil, err
	}

	o.logger.Debug("Transliterator ready",
		zap.Stringer("policy", policy),
		zap.Int("symbols", symbols.Len()))

	return leet.New(leet.WithSymbols(symbols), leet.WithPolicy(policy)), nil
}

// symbols resolves the table selected by --table or --preset.
func (o *rootOptions) symbols() (leet.SymbolMap, error) {
	f, err := o.tableFile()
	if err != nil {
		return leet.SymbolMap{}, err
	}

	return f.SymbolMap()
}

func (o *rootOptions) tableFile() (*table.File, error) {
	if o.tablePath != "" {
		f, err := table.LoadFile(o.tablePath)
		if err != nil {
			return nil, err
		}

		o.logger.Debug("Loaded table file", zap.String("path", o.tablePath), zap.String("name", f.Name))

		return f, nil
	}

	f, ok := table.PresetFile(o.preset)
	if !ok {
		if name, found := table.SuggestPreset(o.preset); found {
			return nil, fmt.Errorf("unknown preset %q (did you mean %q?)", o.preset, name)
		}

		return nil, fmt.Errorf("unknown preset %q (available: %s)", o.preset, strings.Join(table.PresetNames(), ", "))
	}

	o.logger.Debug("Using preset table", zap.String("name", f.Name))

	return f, nil
}
