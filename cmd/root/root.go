package root

import (
	"github.com/spf13/cobra"

	"github.com/fmtools/mitlc/cmd/compile"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mitlc",
		Short: "mitlc compiles STL formulas into interval-partitioned MITL",
		Long: `mitlc rewrites Signal Temporal Logic formulas over real-valued
predicates into Metric Interval Temporal Logic formulas over Boolean
propositions, split into sub-intervals on which the observed signal is
stable.`,
	}

	// add sub-commands
	rootCmd.AddCommand(compile.NewCompileCommand())

	return rootCmd
}
