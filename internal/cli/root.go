// Package cli builds the command line shared by colslc and rowslc.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/praetorian-inc/slice/pkg/config"
	"github.com/praetorian-inc/slice/pkg/filter"
	"github.com/praetorian-inc/slice/pkg/slicer"
	"github.com/praetorian-inc/slice/pkg/source"
	"github.com/spf13/cobra"
)

// Tool describes one of the slicing binaries.
type Tool struct {
	Name    string
	Axis    slicer.Axis
	Short   string
	Long    string
	Example string
}

// Colslc slices the columns of every row.
var Colslc = Tool{
	Name:  "colslc",
	Axis:  slicer.Columns,
	Short: "Slice columns out of each line of text",
	Long: `colslc prints the selected columns of every input line, joined by single spaces.
Columns are separated by runs of whitespace unless --delimiter is given.

Filters are 1-based: "n", "n:m", "n:", ":n" or ":". Several filters are merged
and columns are always printed in input order.`,
	Example: `  docker images | colslc -f 1 -f 4:6
  colslc -d , -f "2 5:" data.csv`,
}

// Rowslc slices rows of the whole input.
var Rowslc = Tool{
	Name:  "rowslc",
	Axis:  slicer.Rows,
	Short: "Slice rows out of text",
	Long: `rowslc prints the selected lines of its input.

Filters are 1-based: "n", "n:m", "n:", ":n" or ":". Several filters are merged
and lines are always printed in input order.`,
	Example: `  rowslc -f :3 file.txt     # like head -3
  rowslc -f 3: file.txt     # like tail -n +3`,
}

type options struct {
	filters    []string
	presets    []string
	delimiter  string
	configPath string
	color      string
	verbose    bool
	version    bool
}

// NewCommand returns the root command for tool.
func NewCommand(tool Tool) *cobra.Command {
	cmd, _ := newCommand(tool)
	return cmd
}

func newCommand(tool Tool) (*cobra.Command, *options) {
	opts := &options{color: "auto"}

	cmd := &cobra.Command{
		Use:           tool.Name + " [PATH]",
		Short:         tool.Short,
		Long:          tool.Long,
		Example:       tool.Example,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, tool, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.filters, "filters", "f", nil, "Filters to apply, whitespace-separated (repeatable)")
	flags.StringArrayVarP(&opts.presets, "preset", "p", nil, "Named filter preset from the config file (repeatable)")
	if tool.Axis == slicer.Columns {
		flags.StringVarP(&opts.delimiter, "delimiter", "d", "", "Literal column delimiter (default: runs of whitespace)")
	}
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: $"+config.EnvPath+")")
	flags.StringVar(&opts.color, "color", "auto", "Color diagnostics: auto, always, never")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print a summary to stderr")
	flags.BoolVarP(&opts.version, "version", "V", false, "Show version information")

	return cmd, opts
}

func run(cmd *cobra.Command, tool Tool, opts *options, args []string) error {
	if opts.version {
		return printVersion(cmd.OutOrStdout(), tool)
	}

	if _, err := colorEnabled(opts.color, cmd.ErrOrStderr()); err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tokens, err := cfg.Expand(opts.presets)
	if err != nil {
		return err
	}
	tokens = append(tokens, splitTokens(opts.filters)...)

	sc := slicer.Config{Axis: tool.Axis}
	if cmd.Flags().Changed("filters") || len(opts.presets) > 0 {
		set, err := filter.ParseAll(tokens)
		if err != nil {
			return fmt.Errorf("parsing filters: %w", err)
		}
		sc.Filters = set
	}
	if tool.Axis == slicer.Columns {
		sc.Delimiter = cfg.Delimiter
		if cmd.Flags().Changed("delimiter") {
			sc.Delimiter = opts.delimiter
		}
	}

	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	diag := newLogger(cmd.ErrOrStderr(), tool.Name, opts)
	if in.Compression != source.None {
		diag.Printf("reading %s input from %s", in.Compression, in.Name)
	}

	stats, err := slicer.New(sc).Slice(in, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("slice operation failed: %w", err)
	}

	if sc.Filters == nil {
		diag.Printf("copied %d lines, wrote %s", stats.Lines, humanize.Bytes(uint64(stats.BytesWritten)))
	} else {
		diag.Printf("selected %d of %d %s, wrote %s", stats.Selected, stats.Items, tool.Axis, humanize.Bytes(uint64(stats.BytesWritten)))
	}
	return nil
}

// splitTokens accepts both repeated -f flags and a single quoted,
// whitespace-separated list.
func splitTokens(values []string) []string {
	var tokens []string
	for _, v := range values {
		tokens = append(tokens, strings.Fields(v)...)
	}
	return tokens
}

func openInput(cmd *cobra.Command, args []string) (*source.Input, error) {
	if len(args) == 0 || args[0] == source.Stdin {
		return source.Wrap(cmd.InOrStdin(), "<stdin>", false)
	}
	return source.Open(args[0])
}

// Main runs tool with args and returns the process exit code.
func Main(tool Tool, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd, opts := newCommand(tool)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		enabled, _ := colorEnabled(opts.color, stderr)
		s := newStyles(enabled)
		fmt.Fprintf(stderr, "%s %v\n", s.err.Sprint("error:"), err)
		return 1
	}
	return 0
}
