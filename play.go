package main

import (
	"fmt"

	"multiagent/engine"
	"multiagent/maze"
	"multiagent/searcher/agent"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"golang.org/x/exp/rand"
)

func playCmd() *commander.Command {
	opts := &options{}
	cmd := &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			return play(opts)
		},
		UsageLine: "play [options]",
		Short:     "play one game with the configured agent",
		Long: `
play one game on a layout: the controlled agent searches with the configured
strategy, the adversaries move at random.

	$ multiagent play -layout minimaxClassic -strategy expectimax -depth 3
`,
		Flag: *flag.NewFlagSet("play", flag.ExitOnError),
	}
	opts.register(&cmd.Flag)
	return cmd
}

func play(opts *options) error {
	c, err := opts.load()
	if err != nil {
		return err
	}
	defer opts.startProfile()()

	layout, err := maze.LoadLayout(c.Layout)
	if err != nil {
		return err
	}
	state := maze.NewState(layout)

	controlled, err := agent.NewSearchAgent(c.Agent, true)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(c.Seed))
	agents := []agent.Agent{controlled}
	for i := 1; i < state.NumAgents(); i++ {
		agents = append(agents, agent.NewRandomAgent(i, rng))
	}

	e, err := engine.NewLocal(state, agents, engine.WithMaxRounds(c.MaxRounds), engine.WithName(c.Layout))
	if err != nil {
		return err
	}
	gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Printf("%s on %s: %s with score %.0f in %d moves (%v)\n",
		c.Agent.Strategy, c.Layout, gameMetric.Outcome, gameMetric.Score, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}
