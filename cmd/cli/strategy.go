package main

import (
	"github.com/minaorangina/hanabi/deck"
	"github.com/minaorangina/hanabi/game"
	"github.com/minaorangina/hanabi/knowledge"
)

// revealApplier treats a clue as pointing at every matching card:
// matching cards learn the attribute, the rest learn they don't have it.
var revealApplier = knowledge.ApplierFunc(func(clue knowledge.Clue, hand []deck.Card, info []knowledge.CardInfo) []knowledge.CardInfo {
	for i, card := range hand {
		switch clue.Attribute {
		case knowledge.ColorClue:
			if card.Color != clue.Color {
				info[i] = info[i].RuleOutColor(clue.Color)
				continue
			}
			for _, c := range deck.Colors {
				if c != clue.Color {
					info[i] = info[i].RuleOutColor(c)
				}
			}
		case knowledge.ValueClue:
			if card.Value != clue.Value {
				info[i] = info[i].RuleOutValue(clue.Value)
				continue
			}
			for _, v := range deck.Values {
				if v != clue.Value {
					info[i] = info[i].RuleOutValue(v)
				}
			}
		}
	}
	return info
})

// surelyPlayable is true when every card info allows would be playable
func surelyPlayable(info knowledge.CardInfo, board *game.BoardState) bool {
	for _, c := range info.Colors() {
		for _, v := range info.Values() {
			if !board.Playable(deck.Card{Color: c, Value: v}) {
				return false
			}
		}
	}
	return true
}

// choose plays what it knows is playable, clues a playable card to a
// teammate, and otherwise discards its oldest card
func choose(view *game.GameStateView) (game.TurnChoice, bool) {
	board := &view.Board

	for i, info := range view.Info.Items() {
		if surelyPlayable(info, board) {
			return game.Play{Index: i}, true
		}
	}

	if board.HintsRemaining > 0 {
		for p := 0; p < board.NumPlayers; p++ {
			other := game.Player(p)
			ps, ok := view.OtherPlayerStates[other]
			if !ok {
				continue
			}
			for i, card := range ps.Hand.Items() {
				info, _ := ps.Info.At(i)
				if board.Playable(card) && !surelyPlayable(info, board) {
					clue := knowledge.ValueOf(card.Value)
					if len(info.Values()) == 1 {
						clue = knowledge.ColorOf(card.Color)
					}
					return game.Hint{To: other, Clue: &clue}, true
				}
			}
		}
	}

	switch {
	case view.HandSize() > 0 && board.HintsRemaining < board.HintsTotal:
		return game.Discard{Index: 0}, true
	case board.HintsRemaining > 0:
		return game.Hint{}, true
	case view.HandSize() > 0:
		return game.Discard{Index: 0}, true
	default:
		return nil, false
	}
}
