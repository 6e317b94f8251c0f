package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"multiagent/experiments"
	"multiagent/experiments/metrics"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func compareCmd() *commander.Command {
	opts := &options{}
	var output string
	cmd := &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			return compare(opts, output)
		},
		UsageLine: "compare [options]",
		Short:     "compare search strategies over several games",
		Long: `
compare plays the same seeded games for every agent listed under "compare" in
the config file (or the single configured agent), then prints win counts and
search cost per strategy.

	$ multiagent compare -config compare.yaml -games 20 -out results
`,
		Flag: *flag.NewFlagSet("compare", flag.ExitOnError),
	}
	opts.register(&cmd.Flag)
	cmd.Flag.StringVar(&output, "out", "", "Directory for CSV records (default from config)")
	return cmd
}

func compare(opts *options, output string) error {
	c, err := opts.load()
	if err != nil {
		return err
	}
	defer opts.startProfile()()

	if output == "" {
		output = c.Output
	}

	var configs []metrics.AgentConfig
	for i, a := range c.Contenders() {
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			Strategy:   a.Strategy,
			Depth:      a.Depth,
			Evaluation: a.Evaluation,
		})
	}

	report, err := experiments.Run(experiments.Experiment{
		Name:      "compare_" + c.Layout,
		Layout:    c.Layout,
		Games:     c.Games,
		MaxRounds: c.MaxRounds,
		Seed:      c.Seed,
		Configs:   configs,
		OutputDir: output,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTRATEGY\tDEPTH\tWINS\tNODES/MOVE\tSTDDEV\tTIME/MOVE\tPRUNES")
	for _, config := range configs {
		s := report.Summaries[config.ID]
		fmt.Fprintf(w, "%d\t%s\t%d\t%d/%d\t%.1f\t%.1f\t%v\t%d\n",
			config.ID, config.Strategy, config.Depth, report.Wins[config.ID], c.Games,
			s.MeanNodes, s.StdDevNodes, s.MeanDuration, s.TotalPrunes)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if report.Dir != "" {
		fmt.Printf("records written to %s\n", report.Dir)
	}
	return nil
}
