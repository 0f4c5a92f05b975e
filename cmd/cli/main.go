package main

import (
	"github.com/minaorangina/hanabi/config"
	"github.com/minaorangina/hanabi/game"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.WithError(err).Fatal("Could not load configuration")
	}
	logger := cfg.Logger()

	opts := cfg.Options(logger)
	opts.Applier = revealApplier
	g, err := game.New(opts, cfg.Rand())
	if err != nil {
		logger.WithError(err).Fatal("Could not initialise a new game")
	}

	log := logger.WithField("game_id", g.ID())
	history := []game.Turn{}

	for !g.IsOver() {
		player := g.CurrentPlayer()
		view, err := g.View(player)
		if err != nil {
			log.WithError(err).Fatal("Could not build view")
		}

		choice, ok := choose(view)
		if !ok {
			log.WithField("player", player).Warn("No legal move left, stopping")
			break
		}
		if err := g.ProcessChoice(choice); err != nil {
			log.WithError(err).Fatal("Turn rejected")
		}

		turn := game.Turn{Player: player, Choice: choice}
		history = append(history, turn)
		log.WithField("score", g.Score()).Info(turn)
	}

	log.WithFields(logrus.Fields{
		"score": g.Score(),
		"turns": len(history),
	}).Info("Game finished")
}
