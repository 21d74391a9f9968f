// Package player builds configured searchers from strings like
// "beam:width=5,depth=10" so front-ends can pick strategies at run time.
package player

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/4eta/thunder-book/game"
	"github.com/4eta/thunder-book/meta"
	"github.com/4eta/thunder-book/searcher"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var (
	DefaultMazeConfig = "chokudai:width=1,depth=10,duration=10ms"
	DefaultDuelConfig = "minimax:depth=4"
	DefaultPlanConfig = "annealing"
)

// module is a registered strategy: the parameters it understands and how to
// build it from search options.
type module[T any] struct {
	params []string
	build  func(options ...searcher.Option) T
}

var mazeModules = map[string]module[searcher.Searcher[*game.MazeState]]{
	"random": {
		build: func(o ...searcher.Option) searcher.Searcher[*game.MazeState] { return searcher.NewRandom[*game.MazeState](o...) },
	},
	"greedy": {
		build: func(o ...searcher.Option) searcher.Searcher[*game.MazeState] { return searcher.NewGreedy[*game.MazeState](o...) },
	},
	"beam": {
		params: []string{"width", "depth", "duration"},
		build:  func(o ...searcher.Option) searcher.Searcher[*game.MazeState] { return searcher.NewBeamSearch[*game.MazeState](o...) },
	},
	"chokudai": {
		params: []string{"width", "depth", "rounds", "duration"},
		build: func(o ...searcher.Option) searcher.Searcher[*game.MazeState] {
			return searcher.NewChokudaiSearch[*game.MazeState](o...)
		},
	},
}

var duelModules = map[string]module[searcher.Searcher[*game.AlternateMazeState]]{
	"random": {
		build: func(o ...searcher.Option) searcher.Searcher[*game.AlternateMazeState] {
			return searcher.NewRandom[*game.AlternateMazeState](o...)
		},
	},
	"minimax": {
		params: []string{"depth"},
		build: func(o ...searcher.Option) searcher.Searcher[*game.AlternateMazeState] {
			return searcher.NewMiniMax[*game.AlternateMazeState](o...)
		},
	},
}

var planModules = map[string]module[searcher.Optimizer[*game.AutoMoveMazeState]]{
	"random": {
		build: func(o ...searcher.Option) searcher.Optimizer[*game.AutoMoveMazeState] {
			return searcher.NewRandomPlan[*game.AutoMoveMazeState](o...)
		},
	},
	"hillclimb": {
		params: []string{"iterations"},
		build: func(o ...searcher.Option) searcher.Optimizer[*game.AutoMoveMazeState] {
			return searcher.NewHillClimb[*game.AutoMoveMazeState](o...)
		},
	},
	"annealing": {
		params: []string{"iterations", "start_temp", "end_temp"},
		build: func(o ...searcher.Option) searcher.Optimizer[*game.AutoMoveMazeState] {
			return searcher.NewSimulatedAnnealing[*game.AutoMoveMazeState](o...)
		},
	},
}

// NewMazeSearcher builds a single-agent searcher. An empty config selects
// DefaultMazeConfig. Every strategy also accepts the "metrics" flag.
func NewMazeSearcher(config string, rng *rand.Rand) (searcher.Searcher[*game.MazeState], error) {
	return newFromConfig(mazeModules, config, DefaultMazeConfig, rng)
}

func NewDuelSearcher(config string, rng *rand.Rand) (searcher.Searcher[*game.AlternateMazeState], error) {
	return newFromConfig(duelModules, config, DefaultDuelConfig, rng)
}

func NewPlanOptimizer(config string, rng *rand.Rand) (searcher.Optimizer[*game.AutoMoveMazeState], error) {
	return newFromConfig(planModules, config, DefaultPlanConfig, rng)
}

func newFromConfig[T any](modules map[string]module[T], config, defaultConfig string, rng *rand.Rand) (T, error) {
	var t T
	if config == "" {
		config = defaultConfig
	}
	name, params := splitConfig(config)
	m, ok := modules[name]
	if !ok {
		return t, errors.Errorf("unknown strategy %q, expected one of %v", name, sortedKeys(modules))
	}

	options, err := popOptions(params, m.params)
	if err != nil {
		return t, errors.WithMessagef(err, "failed to configure %q", name)
	}
	withMetrics, err := PopParamOr(params, "metrics", false)
	if err != nil {
		return t, errors.WithMessagef(err, "failed to configure %q", name)
	}
	if withMetrics {
		options = append(options, searcher.WithMetrics())
	}
	if len(params) > 0 {
		return t, errors.Errorf("unknown parameters %v for strategy %q", sortedKeys(params), name)
	}
	options = append(options, searcher.WithRand(rng))
	return construct(name, m, options)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// construct turns a constructor panic on missing parameters into an error.
func construct[T any](name string, m module[T], options []searcher.Option) (t T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("invalid configuration for strategy %q: %v", name, r)
		}
	}()
	return m.build(options...), nil
}

// popOptions converts the given keys, when present, into search options.
func popOptions(params map[string]string, keys []string) ([]searcher.Option, error) {
	var options []searcher.Option
	startTemp, endTemp := meta.ANNEAL_START_TEMP, meta.ANNEAL_END_TEMP
	withTemp := false
	for _, key := range keys {
		if _, ok := params[key]; !ok {
			continue
		}
		switch key {
		case "duration":
			d, err := PopDurationOr(params, key, 0)
			if err != nil {
				return nil, err
			}
			options = append(options, searcher.WithDuration(d))
		case "start_temp", "end_temp":
			v, err := PopParamOr(params, key, 0.0)
			if err != nil {
				return nil, err
			}
			if key == "start_temp" {
				startTemp = v
			} else {
				endTemp = v
			}
			withTemp = true
		default:
			v, err := PopParamOr(params, key, 0)
			if err != nil {
				return nil, err
			}
			if v < 0 {
				return nil, errors.Errorf("parameter %s must not be negative, got %d", key, v)
			}
			switch key {
			case "width":
				options = append(options, searcher.WithWidth(v))
			case "depth":
				options = append(options, searcher.WithDepth(v))
			case "rounds":
				options = append(options, searcher.WithRounds(v))
			case "iterations":
				options = append(options, searcher.WithIterations(v))
			}
		}
	}
	if withTemp {
		options = append(options, searcher.WithTemperature(startTemp, endTemp))
	}
	return options, nil
}

// splitConfig separates "name:k=v,flag" into the name and a map of parameters.
// See GetParamOr and PopParamOr to parse values from the map.
func splitConfig(config string) (string, map[string]string) {
	name := config
	rest := ""
	if split := strings.Index(config, ":"); split != -1 {
		name, rest = config[:split], config[split+1:]
	}
	params := make(map[string]string)
	for _, part := range strings.Split(rest, ",") {
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 1 {
			params[kv[0]] = ""
		} else {
			params[kv[0]] = kv[1]
		}
	}
	return name, params
}

// GetParamOr parses a parameter to the given type if the key is present, or
// returns defaultValue if not. A bool key without a value is true.
func GetParamOr[T interface{ bool | int | float64 }](params map[string]string, key string, defaultValue T) (T, error) {
	var t T
	toT := func(v any) T { return v.(T) }
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	switch any(defaultValue).(type) {
	case int:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
		}
		return toT(parsed), nil
	case float64:
		if value == "" {
			return defaultValue, nil
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, value)
		}
		return toT(parsed), nil
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1":
			return toT(true), nil
		case "false", "0":
			return toT(false), nil
		}
		return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
	}
	return defaultValue, nil
}

// PopParamOr is like GetParamOr but also deletes the parameter from params.
func PopParamOr[T interface{ bool | int | float64 }](params map[string]string, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// PopDurationOr parses values such as "10ms" or "1s" and deletes the parameter.
func PopDurationOr(params map[string]string, key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := params[key]
	if !exists || value == "" {
		delete(params, key)
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse configuration %s=%q to duration", key, value)
	}
	if d < 0 {
		return 0, errors.Errorf("configuration %s=%q must not be negative", key, value)
	}
	delete(params, key)
	return d, nil
}
