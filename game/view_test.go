package game

import (
	"testing"

	"github.com/minaorangina/hanabi/deck"
	utils "github.com/minaorangina/hanabi/internal"
	"github.com/minaorangina/hanabi/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	t.Run("a player sees everyone's hand but their own", func(t *testing.T) {
		g := newTestGame(t, DefaultOptions(3), 1)

		for _, p := range g.Players() {
			view, err := g.View(p)
			utils.AssertNoError(t, err)

			assert.Equal(t, p, view.Player)
			assert.NotContains(t, view.OtherPlayerStates, p)
			assert.Len(t, view.OtherPlayerStates, 2)

			for other, ps := range view.OtherPlayerStates {
				assert.Equal(t, g.players[other].Hand.Items(), ps.Hand.Items())
				assert.Equal(t, g.players[other].Info.Items(), ps.Info.Items())

				hand, ok := view.Hand(other)
				assert.True(t, ok)
				assert.Equal(t, g.players[other].Hand.Items(), hand)
			}

			_, ok := view.Hand(p)
			assert.False(t, ok)
			assert.Equal(t, g.players[p].Info.Items(), view.Info.Items())
			assert.Equal(t, 5, view.HandSize())
		}
	})

	t.Run("the board is shared but the deck stays hidden", func(t *testing.T) {
		g := newTestGame(t, twoPlayerOpts(), 1)
		require.NoError(t, g.ProcessChoice(Discard{Index: 0}))

		view, err := g.View(1)
		utils.AssertNoError(t, err)

		assert.Nil(t, view.Board.drawPile)
		assert.Equal(t, 45, view.Board.DeckSize())
		assert.Equal(t, g.board.Discard.Items(), view.Board.Discard.Items())
		assert.Equal(t, g.board.Turn, view.Board.Turn)
		assert.Equal(t, g.board.HintsRemaining, view.Board.HintsRemaining)
		assert.Equal(t, g.board.DecklessTurnsRemaining, view.Board.DecklessTurnsRemaining)
	})

	t.Run("views are snapshots", func(t *testing.T) {
		g := newTestGame(t, twoPlayerOpts(), 1)
		view, err := g.View(0)
		utils.AssertNoError(t, err)
		before := g.players[1].Hand.Items()

		t.Log("Changing the view does not change the game")
		view.OtherPlayerStates[1].Hand.Draw()
		view.Info.Set(0, knowledge.New().RuleOutValue(1))
		view.Board.Fireworks[deck.Red].Place(deck.Card{Color: deck.Red, Value: 1})
		view.Board.LivesRemaining = 0

		assert.Equal(t, before, g.players[1].Hand.Items())
		assert.Equal(t, knowledge.New(), g.players[0].Info.Items()[0])
		assert.Equal(t, 0, g.Score())
		assert.False(t, g.IsOver())

		t.Log("And later turns do not change the view")
		require.NoError(t, g.ProcessChoice(Hint{}))
		assert.Equal(t, 8, view.Board.HintsRemaining)
		assert.Equal(t, 1, view.Board.Turn)
	})

	t.Run("unknown players have no view", func(t *testing.T) {
		g := newTestGame(t, twoPlayerOpts(), 1)

		for _, p := range []Player{-1, 2} {
			view, err := g.View(p)
			utils.AssertErrorIs(t, err, ErrUnknownPlayer)
			assert.Nil(t, view)
		}
	})
}

func TestTurnString(t *testing.T) {
	clue := knowledge.ColorOf(deck.Yellow)
	cases := []struct {
		turn Turn
		want string
	}{
		{Turn{Player: 0, Choice: Hint{}}, "player 0: hint"},
		{Turn{Player: 1, Choice: Hint{To: 0, Clue: &clue}}, "player 1: hint player 0 about color yellow"},
		{Turn{Player: 2, Choice: Discard{Index: 3}}, "player 2: discard 3"},
		{Turn{Player: 0, Choice: Play{Index: 1}}, "player 0: play 1"},
	}

	for _, c := range cases {
		utils.AssertEqual(t, c.turn.String(), c.want)
	}
}
