// Package main provides the uplot command, which draws plots of
// delimiter-separated data in the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/red-data-tools/youplot-go/pkg/youplot"
	"github.com/red-data-tools/youplot-go/pkg/youplot/params"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&settings{}).ExecuteContext(ctx); err != nil {
		youplot.PrintError(os.Stderr, err, term.IsTerminal(int(os.Stderr.Fd())))
		stop()
		os.Exit(1)
	}
}

func newRootCmd(s *settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uplot <command> [options] <data.tsv>",
		Short: "Create ASCII charts on the terminal with data from standard streams",
		Long: `uplot reads delimiter-separated data from files or standard input
and draws bar plots, histograms, line plots, scatter plots, density
plots and box plots with Unicode characters.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			_, err := youplot.ParseCommand(args[0])
			return err
		},
	}

	pf := rootCmd.PersistentFlags()
	s.addPersistentFlags(pf)
	// -h is the plot height.
	pf.Bool("help", false, "show this help")

	for _, c := range youplot.Commands() {
		rootCmd.AddCommand(newPlotCmd(c, s))
	}
	return rootCmd
}

func newPlotCmd(c youplot.Command, s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:     c.String() + " [options] [data.tsv ...]",
		Aliases: c.Aliases(),
		Short:   summaries[c],
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, c, s, args)
		},
	}
	s.commandFlags(c, cmd.Flags())
	return cmd
}

var summaries = map[youplot.Command]string{
	youplot.Barplot:   "draw a horizontal barplot",
	youplot.Histogram: "draw a horizontal histogram",
	youplot.Lineplot:  "draw a line chart",
	youplot.Lineplots: "draw a line chart with multiple series",
	youplot.Scatter:   "draw a scatter plot",
	youplot.Density:   "draw a density plot",
	youplot.Boxplot:   "draw a horizontal boxplot",
	youplot.Count:     "draw a barplot based on the number of occurrences (slow)",
	youplot.Colors:    "show the list of available colors",
}

func run(cmd *cobra.Command, c youplot.Command, s *settings, args []string) error {
	opts, p, err := configure(cmd, s)
	if err != nil {
		return err
	}

	in, err := youplot.OpenInputs(args, os.Stdin, opts)
	if err != nil {
		return err
	}
	defer in.Close()

	r := youplot.NewRunner(c, opts, p, youplot.ModeExecutable)
	r.Stdin = in
	r.Logger.WithField("args", strings.Join(args, " ")).Debug("starting " + c.String())
	return r.Run(cmd.Context())
}

// configure builds the run options and parameters from the defaults, the
// config file and then the flags.
func configure(cmd *cobra.Command, s *settings) (youplot.Options, *params.Parameters, error) {
	opts := youplot.DefaultOptions()
	p := &params.Parameters{}

	path, err := youplot.FindConfig(s.config)
	if err != nil {
		return opts, nil, err
	}
	if path != "" {
		conf, err := youplot.LoadConfig(path)
		if err != nil {
			return opts, nil, err
		}
		if err := conf.Apply(&opts, p); err != nil {
			return opts, nil, err
		}
	}

	if err := s.apply(cmd.Flags(), &opts, p); err != nil {
		return opts, nil, err
	}
	return opts, p, nil
}
