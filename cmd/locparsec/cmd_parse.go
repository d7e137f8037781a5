package main

import (
	"fmt"
	"strings"

	"github.com/clarete/locparsec"
	"github.com/clarete/locparsec/examples/arithmetic"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// dumper prints outcomes as plain structs rather than through their
// String methods.
var dumper = &spew.ConfigState{Indent: " ", DisableMethods: true}

func newParseCmd(opts *options) *cobra.Command {
	var limit int
	var dump bool

	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "List the outcomes the term parser finds for an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			input := strings.TrimSpace(args[0])
			runID := uuid.NewString()

			if !cmd.Flags().Changed("limit") {
				limit = opts.cfg.GetInt("driver.max_outcomes")
			}
			log.Infof("run %s: parsing %q (limit %d)", runID, input, limit)

			seq := locparsec.Outcomes(arithmetic.Default().Term, input)
			var outcomes []locparsec.Outcome[*arithmetic.Node]
			if limit > 0 {
				outcomes = locparsec.Take(seq, limit)
			} else {
				outcomes = locparsec.Run(arithmetic.Default().Term, input)
			}
			log.Infof("run %s: %d outcome(s)", runID, len(outcomes))

			if dump {
				fmt.Fprintf(out, "run %s\n", runID)
				dumper.Fdump(out, outcomes)
				return nil
			}

			for i, outcome := range outcomes {
				header := opts.stdout.paint(colorGray, fmt.Sprintf("#%d", i+1))
				switch o := outcome.(type) {
				case locparsec.Complete[*arithmetic.Node]:
					fmt.Fprintf(out, "%s %s = %s, remainder %q\n",
						header,
						opts.stdout.paint(colorGreen, "complete"),
						formatValue(arithmetic.Eval(o.Value)),
						o.Remainder)
					fmt.Fprintln(out, o.Value.PrettyString())
				case locparsec.Partial[*arithmetic.Node]:
					fmt.Fprintf(out, "%s %s %s\n",
						header,
						opts.stdout.paint(colorYellow, "partial"),
						o.Path)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of outcomes to list (defaults to driver.max_outcomes, 0 lists all)")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the raw outcome values")

	return cmd
}
