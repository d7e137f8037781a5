package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/clarete/locparsec/examples/arithmetic"
	"github.com/spf13/cobra"
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions read line by line from the standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())
			for {
				fmt.Fprint(out, opts.stdout.paint(colorCyan, "> "))
				text, err := reader.ReadString('\n')
				expr := strings.TrimSpace(text)

				if expr != "" {
					v, perr := arithmetic.Evaluate(expr, opts.cfg)
					if perr != nil {
						printParsingError(out, opts.stdout, expr, perr)
					} else {
						fmt.Fprintln(out, opts.stdout.paint(colorGreen, formatValue(v)))
					}
				}

				if err != nil {
					// end of input
					fmt.Fprintln(out)
					return nil
				}
			}
		},
	}
}
