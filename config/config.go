package config

import (
	"errors"
	"fmt"
	"os"

	"multiagent/game"
	"multiagent/maze"
	"multiagent/meta"
	"multiagent/searcher"
	"multiagent/searcher/agent"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Layout    string         `yaml:"layout"`
	Seed      uint64         `yaml:"seed"`
	Games     int            `yaml:"games"`
	MaxRounds int            `yaml:"max_rounds"`
	LogLevel  string         `yaml:"log_level"`
	Output    string         `yaml:"output"`
	Agent     agent.Config   `yaml:"agent"`
	Compare   []agent.Config `yaml:"compare"`
}

func Default() Config {
	return Config{
		Layout:    meta.LAYOUT,
		Seed:      meta.SEED,
		Games:     meta.GAMES,
		MaxRounds: meta.MAX_ROUNDS,
		LogLevel:  meta.LOG_LEVEL,
		Output:    meta.OUTPUT,
		Agent: agent.Config{
			Strategy:   meta.STRATEGY,
			Depth:      meta.DEPTH,
			Evaluation: meta.EVALUATION,
		},
	}
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	c := Default()

	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports every misconfiguration at once, before any game starts.
func (c Config) Validate() error {
	var errs []error

	if _, err := maze.LoadLayout(c.Layout); err != nil {
		errs = append(errs, err)
	}
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.MaxRounds < 1 {
		errs = append(errs, fmt.Errorf("max_rounds must be positive, got %d", c.MaxRounds))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	errs = append(errs, validateAgent("agent", c.Agent)...)
	for i, a := range c.Compare {
		errs = append(errs, validateAgent(fmt.Sprintf("compare[%d]", i), a)...)
	}

	return errors.Join(errs...)
}

func validateAgent(name string, a agent.Config) []error {
	var errs []error
	if _, err := searcher.ParseStrategy(a.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
	}
	if a.Depth < 1 {
		errs = append(errs, fmt.Errorf("%s: %w: %d", name, searcher.ErrInvalidDepth, a.Depth))
	}
	if a.Evaluation != "" {
		if _, err := game.LookupEvaluation(a.Evaluation); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errs
}

// Contenders returns the configs to compare, falling back to the main agent.
func (c Config) Contenders() []agent.Config {
	if len(c.Compare) > 0 {
		return c.Compare
	}
	return []agent.Config{c.Agent}
}
