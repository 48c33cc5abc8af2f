package compile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fmtools/mitlc/internal/feasibility"
	"github.com/fmtools/mitlc/pkg/mitl"
	"github.com/fmtools/mitlc/pkg/mitl/rewrite"
	"github.com/fmtools/mitlc/pkg/mitl/signal"
)

type options struct {
	formula    string
	output     string
	signalPath string
	dedupe     bool
	check      bool
}

func NewCompileCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compiles an STL formula into a partitioned MITL formula",
		Long: `Compiles an STL formula into a partitioned MITL formula. For instance:

  mitlc compile --formula "G [0, 30] ((z > 1) U (x > 0.3)) and y < 2"

Real-valued predicates are replaced by Boolean propositions, and the
bounded globally-until operator is split at every time point where the
observed signal's truth values change. The formula and the output
filename are prompted for when not given as flags. The result is
written to a .mitl file.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.signalPath == "" {
				return nil
			}
			if _, err := os.Stat(opts.signalPath); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("signal config (%s) not found", opts.signalPath)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formula, "formula", "f", "", "STL formula to compile (prompted for when empty)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output filename, .mitl appended when missing (prompted for when empty)")
	cmd.Flags().StringVarP(&opts.signalPath, "signal", "s", "", "YAML signal config (built-in default when empty)")
	cmd.Flags().BoolVar(&opts.dedupe, "dedupe", false, "give textually identical predicates one proposition")
	cmd.Flags().BoolVar(&opts.check, "check", false, "warn when the observed signal rules the formula out")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	formula := opts.formula
	if formula == "" {
		fmt.Fprint(out, "Enter the STL formula: ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("error reading formula: %w", err)
		}
		formula = strings.TrimRight(line, "\r\n")
	}

	cfg := signal.Default()
	if opts.signalPath != "" {
		var err error
		if cfg, err = signal.LoadFile(opts.signalPath); err != nil {
			return err
		}
	}

	compiler, err := mitl.New(
		mitl.WithSignalConfig(cfg),
		mitl.WithDedupe(opts.dedupe),
		mitl.WithTracer(mitl.LoggingTracer{Writer: out}),
	)
	if err != nil {
		return err
	}

	result := compiler.Compile(formula)

	if opts.check {
		if err := feasibility.Check(result.Formula, rewrite.Globally, result.Trace, result.Mapping); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", err)
		}
	}

	name := opts.output
	if name == "" {
		fmt.Fprint(out, "\nEnter the filename to save the MITL formula (e.g. output): ")
		if _, err := fmt.Fscan(in, &name); err != nil {
			return fmt.Errorf("error reading filename: %w", err)
		}
	}

	// a failed write is reported but does not fail the run; the
	// compiled formula was already printed above
	path, err := mitl.WriteFile(name, result.Formula)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return nil
	}
	fmt.Fprintf(out, "MITL formula written to %s\n", path)
	return nil
}
