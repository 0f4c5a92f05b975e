// Package game is the rules engine: it owns the whole state of a game,
// hands out per-player views and applies one turn at a time.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/minaorangina/hanabi/deck"
	"github.com/minaorangina/hanabi/knowledge"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// PlayerState is a player's hand plus what is common knowledge about it.
// Hand and Info are parallel: Info.At(i) describes Hand.At(i).
type PlayerState struct {
	Hand *deck.Pile[deck.Card]
	Info *deck.Pile[knowledge.CardInfo]
}

func newPlayerState() *PlayerState {
	return &PlayerState{
		Hand: deck.NewPile[deck.Card](),
		Info: deck.NewPile[knowledge.CardInfo](),
	}
}

func (ps *PlayerState) clone() *PlayerState {
	return &PlayerState{Hand: ps.Hand.Clone(), Info: ps.Info.Clone()}
}

// BoardState is everything every player can see. The contents of the
// draw pile are hidden but its size is not.
type BoardState struct {
	drawPile *deck.Pile[deck.Card]
	// size of a draw pile whose contents were left out of a copy
	concealed int

	Discard   *deck.Pile[deck.Card]
	Fireworks map[deck.Color]*deck.Pile[deck.Card]

	NumPlayers int
	// which turn is it, starting from 1
	Turn int
	// whose turn is it
	Player Player

	HintsTotal     int
	HintsRemaining int
	LivesTotal     int
	LivesRemaining int
	// only counts down once the draw pile is empty
	DecklessTurnsRemaining int
}

// DeckSize returns the number of cards left to draw
func (b *BoardState) DeckSize() int {
	return b.drawPile.Len() + b.concealed
}

// FireworkTop returns the highest card played in color.
// A firework nobody has played on yet shows its zero-value sentinel.
func (b *BoardState) FireworkTop(color deck.Color) deck.Card {
	top, ok := b.Fireworks[color].Top()
	if !ok {
		return deck.Card{Color: color}
	}
	return top
}

// Playable reports whether card is the next card its firework needs
func (b *BoardState) Playable(card deck.Card) bool {
	return card.Value == b.FireworkTop(card.Color).Value+1
}

// conceal copies the board without the draw pile's contents
func (b *BoardState) conceal() BoardState {
	c := *b
	c.drawPile = nil
	c.concealed = b.DeckSize()
	c.Discard = b.Discard.Clone()
	c.Fireworks = make(map[deck.Color]*deck.Pile[deck.Card], len(b.Fireworks))
	for color, firework := range b.Fireworks {
		c.Fireworks[color] = firework.Clone()
	}
	return c
}

// GameState is the complete state of a game, known to nobody
type GameState struct {
	id      string
	players []*PlayerState
	board   BoardState
	applier knowledge.Applier
	log     *logrus.Entry
}

// New deals a fresh game, shuffling the deck with r
func New(opts Options, r *rand.Rand) (*GameState, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: a random source is required", ErrInvalidOptions)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if need := opts.NumPlayers * opts.HandSize; need > deck.Size {
		return nil, fmt.Errorf("%w: %d players with %d cards each need %d cards, deck has %d",
			ErrDeckTooSmall, opts.NumPlayers, opts.HandSize, need, deck.Size)
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		logger = l
	}

	g := &GameState{
		id:      uuid.NewV4().String(),
		players: make([]*PlayerState, opts.NumPlayers),
		applier: opts.Applier,
	}
	g.log = logger.WithField("game_id", g.id)

	drawPile := deck.New(r)
	if g.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		g.log.WithField("deck", drawPile.Items()).Debug("Created deck")
	}

	for i := range g.players {
		ps := newPlayerState()
		for j := 0; j < opts.HandSize; j++ {
			card, ok := drawPile.Draw()
			if !ok {
				return nil, fmt.Errorf("%w: deck ran out dealing to player %d", ErrDeckTooSmall, i)
			}
			ps.Hand.Place(card)
			ps.Info.Place(knowledge.New())
		}
		g.players[i] = ps
	}

	fireworks := make(map[deck.Color]*deck.Pile[deck.Card], len(deck.Colors))
	for _, color := range deck.Colors {
		fireworks[color] = deck.NewPile(deck.Card{Color: color, Value: 0})
	}

	g.board = BoardState{
		drawPile:               drawPile,
		Discard:                deck.NewPile[deck.Card](),
		Fireworks:              fireworks,
		NumPlayers:             opts.NumPlayers,
		Turn:                   1,
		Player:                 0,
		HintsTotal:             opts.NumHints,
		HintsRemaining:         opts.NumHints,
		LivesTotal:             opts.NumLives,
		LivesRemaining:         opts.NumLives,
		DecklessTurnsRemaining: opts.NumPlayers + 1,
	}

	return g, nil
}

// ID identifies the game in logs
func (g *GameState) ID() string {
	return g.id
}

// Players returns every player in turn order
func (g *GameState) Players() []Player {
	players := make([]Player, g.board.NumPlayers)
	for i := range players {
		players[i] = Player(i)
	}
	return players
}

// CurrentPlayer returns the player to move
func (g *GameState) CurrentPlayer() Player {
	return g.board.Player
}

// Board returns a copy of the shared board, with the draw pile concealed
func (g *GameState) Board() BoardState {
	return g.board.conceal()
}

// IsOver reports whether the game has ended. Once true it stays true.
func (g *GameState) IsOver() bool {
	return g.board.LivesRemaining == 0 || g.board.DecklessTurnsRemaining == 0
}

// Score is the number of cards played onto fireworks
func (g *GameState) Score() int {
	score := 0
	for _, firework := range g.board.Fireworks {
		// minus the sentinel
		score += firework.Len() - 1
	}
	return score
}

func (g *GameState) validPlayer(p Player) bool {
	return p >= 0 && int(p) < len(g.players)
}

// checkInvariants catches bugs in the engine, not bad input
func (g *GameState) checkInvariants() error {
	b := &g.board
	if !g.validPlayer(b.Player) || (b.Turn-1)%b.NumPlayers != int(b.Player) {
		return fmt.Errorf("%w: turn %d, player %d of %d", ErrTurnSequence, b.Turn, b.Player, b.NumPlayers)
	}
	if b.HintsRemaining < 0 || b.HintsRemaining > b.HintsTotal {
		return fmt.Errorf("%w: %d of %d hints remaining", ErrInvalidGameState, b.HintsRemaining, b.HintsTotal)
	}
	if b.LivesRemaining < 0 || b.LivesRemaining > b.LivesTotal {
		return fmt.Errorf("%w: %d of %d lives remaining", ErrInvalidGameState, b.LivesRemaining, b.LivesTotal)
	}
	if b.DecklessTurnsRemaining < 0 {
		return fmt.Errorf("%w: negative deckless countdown", ErrInvalidGameState)
	}
	for _, color := range deck.Colors {
		if b.Fireworks[color].Len() == 0 {
			return fmt.Errorf("%w: %s firework lost its sentinel", ErrInvalidGameState, color)
		}
	}
	for i, ps := range g.players {
		if ps.Hand.Len() != ps.Info.Len() {
			return fmt.Errorf("%w: player %d has %d cards but %d knowledge slots",
				ErrInvalidGameState, i, ps.Hand.Len(), ps.Info.Len())
		}
	}
	return nil
}
