package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/4eta/thunder-book/experiments"
	"github.com/4eta/thunder-book/game"
	"github.com/4eta/thunder-book/meta"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	gameName := flag.String("game", "maze", "Game to play: maze, auto or duel")
	agent := flag.String("agent", "", "Strategy config, e.g. beam:width=5,depth=10 (empty for the game's default)")
	opponent := flag.String("opponent", "random", "Second strategy config for duels")
	games := flag.Int("games", meta.GAMES, "Number of games, or of seeds for duels")
	seed := flag.Uint64("seed", meta.SEED, "Seed of the first game")
	entropy := flag.Bool("entropy", false, "Draw seeds from the clock instead of -seed")
	out := flag.String("out", "", "Directory for CSV results (empty disables them)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	cfg := experiments.Config{Name: *gameName, Games: *games, Seed: *seed, Entropy: *entropy, OutDir: *out}
	switch *gameName {
	case "maze":
		summary, err := experiments.RunScoreExperiment(cfg, game.DefaultMazeConfig(), *agent)
		if err != nil {
			log.Fatal().Err(err).Msg("score experiment failed")
		}
		fmt.Printf("average score: %.2f\n", summary.Mean)
	case "auto":
		summary, err := experiments.RunPlanExperiment(cfg, game.DefaultAutoMazeConfig(), *agent)
		if err != nil {
			log.Fatal().Err(err).Msg("plan experiment failed")
		}
		fmt.Printf("average score: %.2f\n", summary.Mean)
	case "duel":
		summary, err := experiments.RunWinRateExperiment(cfg, game.DefaultDuelConfig(), [2]string{*agent, *opponent})
		if err != nil {
			log.Fatal().Err(err).Msg("win rate experiment failed")
		}
		fmt.Printf("win rate: %.3f\n", summary.WinRate)
	default:
		log.Fatal().Msgf("unknown game %q", *gameName)
	}
}
