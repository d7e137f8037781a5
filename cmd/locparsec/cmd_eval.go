package main

import (
	"fmt"
	"strings"

	"github.com/clarete/locparsec/examples/arithmetic"
	"github.com/spf13/cobra"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate arithmetic expressions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, arg := range args {
				expr := strings.TrimSpace(arg)
				v, err := arithmetic.Evaluate(expr, opts.cfg)
				if err != nil {
					printParsingError(out, opts.stdout, expr, err)
					failed++
					continue
				}
				fmt.Fprintln(out, opts.stdout.paint(colorGreen, formatValue(v)))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expression(s) failed", failed, len(args))
			}
			return nil
		},
	}
}
