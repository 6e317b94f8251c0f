package main

import (
	"fmt"
	"os"
	"time"

	"multiagent/config"
	"multiagent/searcher/agent"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var app = &commander.Command{
	UsageLine: "multiagent",
	Short:     "depth-bounded game-tree search for multi-agent games",
	Subcommands: []*commander.Command{
		playCmd(),
		compareCmd(),
	},
	Flag: *flag.NewFlagSet("multiagent", flag.ExitOnError),
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	err := app.Flag.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}

	err = app.Dispatch(app.Flag.Args())
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}

// Flags shared by the subcommands. Zero values leave the config untouched.
type options struct {
	config     string
	layout     string
	strategy   string
	depth      int
	eval       string
	games      int
	seed       int
	logLevel   string
	cpuProfile string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.config, "config", "", "YAML config file")
	fs.StringVar(&o.layout, "layout", "", "Maze layout")
	fs.StringVar(&o.strategy, "strategy", "", "Search strategy: minimax, alphabeta, expectimax")
	fs.IntVar(&o.depth, "depth", 0, "Search depth in rounds")
	fs.StringVar(&o.eval, "eval", "", "Evaluation function")
	fs.IntVar(&o.games, "games", 0, "Games per config")
	fs.IntVar(&o.seed, "seed", 0, "Seed for random adversaries")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level")
	fs.StringVar(&o.cpuProfile, "cpuprofile", "", "Write a CPU profile to this directory")
}

// load builds the validated config and applies the log level.
func (o *options) load() (config.Config, error) {
	c := config.Default()
	if o.config != "" {
		var err error
		c, err = config.Load(o.config)
		if err != nil {
			return c, err
		}
	}

	if o.layout != "" {
		c.Layout = o.layout
	}
	// Agent flags apply to the compared agents as well
	o.override(&c.Agent)
	for i := range c.Compare {
		o.override(&c.Compare[i])
	}
	if o.games != 0 {
		c.Games = o.games
	}
	if o.seed != 0 {
		c.Seed = uint64(o.seed)
	}
	if o.logLevel != "" {
		c.LogLevel = o.logLevel
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid config:\n%w", err)
	}

	level, _ := zerolog.ParseLevel(c.LogLevel)
	zerolog.SetGlobalLevel(level)
	return c, nil
}

func (o *options) override(a *agent.Config) {
	if o.strategy != "" {
		a.Strategy = o.strategy
	}
	if o.depth != 0 {
		a.Depth = o.depth
	}
	if o.eval != "" {
		a.Evaluation = o.eval
	}
}

// startProfile starts CPU profiling if requested. The returned func stops it.
func (o *options) startProfile() func() {
	if o.cpuProfile == "" {
		return func() {}
	}
	return profile.Start(profile.CPUProfile, profile.ProfilePath(o.cpuProfile)).Stop
}
