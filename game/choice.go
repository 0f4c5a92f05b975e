package game

import (
	"fmt"

	"github.com/minaorangina/hanabi/knowledge"
)

// Player identifies a seat at the table, starting from 0
type Player int

// TurnChoice is one of Hint, Discard or Play
type TurnChoice interface {
	fmt.Stringer
	isTurnChoice()
}

// Hint spends a hint token. Clue is optional; when set, it is given to
// player To and handed to the game's knowledge.Applier.
type Hint struct {
	To   Player
	Clue *knowledge.Clue
}

// Discard throws away the card at Index in the acting player's hand
type Discard struct {
	Index int
}

// Play attempts to add the card at Index in the acting player's hand to its firework
type Play struct {
	Index int
}

func (Hint) isTurnChoice()    {}
func (Discard) isTurnChoice() {}
func (Play) isTurnChoice()    {}

func (h Hint) String() string {
	if h.Clue == nil {
		return "hint"
	}
	return fmt.Sprintf("hint player %d about %s", h.To, h.Clue)
}

func (d Discard) String() string {
	return fmt.Sprintf("discard %d", d.Index)
}

func (p Play) String() string {
	return fmt.Sprintf("play %d", p.Index)
}

// Turn records the choice a player made. The game never reads it back.
type Turn struct {
	Player Player
	Choice TurnChoice
}

func (t Turn) String() string {
	return fmt.Sprintf("player %d: %s", t.Player, t.Choice)
}
