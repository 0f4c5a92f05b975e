package game

import (
	"fmt"

	"github.com/minaorangina/hanabi/deck"
	"github.com/minaorangina/hanabi/knowledge"
)

// GameStateView is everything one player is allowed to see.
// It is a snapshot: changing it does not change the game, and later turns
// do not change it.
type GameStateView struct {
	// the player whose view it is
	Player Player
	// what is known about their own hand, which is common knowledge
	Info *deck.Pile[knowledge.CardInfo]
	// the cards of the other players, as well as what they know about them
	OtherPlayerStates map[Player]*PlayerState
	Board             BoardState
}

// View returns what player p can see. p's own hand is never part of it.
func (g *GameState) View(p Player) (*GameStateView, error) {
	if !g.validPlayer(p) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, p)
	}

	others := make(map[Player]*PlayerState, len(g.players)-1)
	for i, ps := range g.players {
		if Player(i) == p {
			continue
		}
		others[Player(i)] = ps.clone()
	}

	return &GameStateView{
		Player:            p,
		Info:              g.players[p].Info.Clone(),
		OtherPlayerStates: others,
		Board:             g.board.conceal(),
	}, nil
}

// HandSize returns how many cards the viewing player holds
func (v *GameStateView) HandSize() int {
	return v.Info.Len()
}

// Hand returns another player's cards. It is false for the viewer's own hand.
func (v *GameStateView) Hand(p Player) ([]deck.Card, bool) {
	ps, ok := v.OtherPlayerStates[p]
	if !ok {
		return nil, false
	}
	return ps.Hand.Items(), true
}
