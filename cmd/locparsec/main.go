package main

import (
	"fmt"
	"os"

	"github.com/clarete/locparsec"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("locparsec.cli")

// options are shared by all commands and filled in before any of
// them runs
type options struct {
	configPath string
	verbosity  int
	color      string

	cfg    *locparsec.Config
	stdout palette
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		p, _ := newPalette("auto", os.Stderr)
		fmt.Fprintf(os.Stderr, "%s %s\n", p.paint(colorRed, "error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "locparsec",
		Short:         "Evaluate and inspect arithmetic expressions with the locparsec engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", "colorize output: auto, always or never (overrides cli.color)")

	rootCmd.AddCommand(newEvalCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newReplCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func (o *options) load(cmd *cobra.Command) error {
	commonlog.Configure(o.verbosity, nil)

	o.cfg = locparsec.NewConfig()
	// auto, always or never
	o.cfg.SetString("cli.color", "auto")
	if o.configPath != "" {
		data, err := os.ReadFile(o.configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := o.cfg.LoadYAML(data); err != nil {
			return err
		}
		log.Infof("loaded configuration from %s", o.configPath)
	}
	if o.color != "" {
		o.cfg.SetString("cli.color", o.color)
	}

	var err error
	o.stdout, err = newPalette(o.cfg.GetString("cli.color"), cmd.OutOrStdout())
	return err
}
