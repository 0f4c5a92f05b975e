package game

import (
	"fmt"

	"github.com/minaorangina/hanabi/deck"
	"github.com/minaorangina/hanabi/knowledge"
	"github.com/sirupsen/logrus"
)

// ProcessChoice applies choice for the player to move and advances the turn.
// On error nothing has changed.
func (g *GameState) ProcessChoice(choice TurnChoice) error {
	if g.IsOver() {
		return ErrGameOver
	}
	if err := g.checkInvariants(); err != nil {
		return err
	}

	var err error
	switch c := choice.(type) {
	case Hint:
		err = g.hint(c)
	case Discard:
		err = g.discard(c.Index)
	case Play:
		err = g.play(c.Index)
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownChoice, choice)
	}
	if err != nil {
		return err
	}

	g.endTurn()
	return g.checkInvariants()
}

func (g *GameState) entry() *logrus.Entry {
	return g.log.WithFields(logrus.Fields{
		"turn":   g.board.Turn,
		"player": g.board.Player,
	})
}

func (g *GameState) current() *PlayerState {
	return g.players[g.board.Player]
}

func (g *GameState) hint(h Hint) error {
	if g.board.HintsRemaining == 0 {
		return ErrNoHintsRemaining
	}

	if h.Clue != nil {
		if !g.validPlayer(h.To) || h.To == g.board.Player {
			return fmt.Errorf("%w: cannot give a clue to player %d", ErrInvalidHint, h.To)
		}
		if !h.Clue.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidHint, h.Clue)
		}
		if g.applier != nil {
			if err := g.applyClue(h.To, *h.Clue); err != nil {
				return err
			}
		}
	}

	g.board.HintsRemaining--
	g.entry().WithField("hints_remaining", g.board.HintsRemaining).Debugf("Gave %s", h)
	return nil
}

func (g *GameState) applyClue(to Player, clue knowledge.Clue) error {
	target := g.players[to]
	info := g.applier.ApplyClue(clue, target.Hand.Items(), target.Info.Items())
	if len(info) != target.Info.Len() {
		return fmt.Errorf("%w: clue produced %d knowledge slots for %d cards",
			ErrInvalidHint, len(info), target.Hand.Len())
	}
	for i, slot := range info {
		target.Info.Set(i, slot)
	}
	return nil
}

func (g *GameState) checkIndex(index int) error {
	if size := g.current().Hand.Len(); index < 0 || index >= size {
		return fmt.Errorf("%w: index %d, hand has %d cards", ErrHandIndexOutOfRange, index, size)
	}
	return nil
}

// takeFromHand removes a card from the current player's hand and replaces it if the deck allows
func (g *GameState) takeFromHand(index int) deck.Card {
	ps := g.current()
	card, _ := ps.Hand.Take(index)
	ps.Info.Take(index)
	if next, ok := g.board.drawPile.Draw(); ok {
		ps.Hand.Place(next)
		ps.Info.Place(knowledge.New())
	}
	return card
}

func (g *GameState) tryAddHint() {
	if g.board.HintsRemaining < g.board.HintsTotal {
		g.board.HintsRemaining++
	}
}

func (g *GameState) discard(index int) error {
	if err := g.checkIndex(index); err != nil {
		return err
	}

	card := g.takeFromHand(index)
	g.board.Discard.Place(card)
	g.tryAddHint()

	g.entry().WithField("card", card).Debug("Discarded card")
	return nil
}

func (g *GameState) play(index int) error {
	if err := g.checkIndex(index); err != nil {
		return err
	}

	card := g.takeFromHand(index)
	log := g.entry().WithField("card", card)

	if !g.board.Playable(card) {
		g.board.Discard.Place(card)
		g.board.LivesRemaining--
		log.WithField("lives_remaining", g.board.LivesRemaining).Debug("Removing a life")
		return nil
	}

	g.board.Fireworks[card.Color].Place(card)
	log.Debug("Played card")
	if card.Value == deck.FinalValue {
		g.tryAddHint()
		log.Debugf("Completed %s firework", card.Color)
	}
	return nil
}

func (g *GameState) endTurn() {
	if g.board.DeckSize() == 0 && g.board.DecklessTurnsRemaining > 0 {
		g.board.DecklessTurnsRemaining--
	}
	g.board.Turn++
	g.board.Player = Player((int(g.board.Player) + 1) % g.board.NumPlayers)

	if g.IsOver() {
		g.log.WithFields(logrus.Fields{
			"turn":  g.board.Turn,
			"score": g.Score(),
		}).Debug("Game over")
	}
}
