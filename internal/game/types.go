// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Feedback: the five marks for one guess.
//   - Entry: one scored guess in a round's transcript.
//   - State / Outcome: where a round stands and how it ended.

package game

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

const (
	// AllowedGuesses is the number of accepted guesses a round allows.
	AllowedGuesses = 6
	// WordLength is the number of letters in targets and guesses.
	WordLength = words.WordLength
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the target but in a different position.
//   - "miss":    letter does not exist in the remaining target letters.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Feedback holds one mark per letter position of a guess, in guess order.
type Feedback [WordLength]Mark

// Solved reports whether every position is a hit.
func (f Feedback) Solved() bool {
	for _, m := range f {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// Entry is one accepted guess and its feedback.
type Entry struct {
	Guess    string   `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// State is the coarse lifecycle of a round.
type State int

const (
	StateAwaitingGuess State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateAwaitingGuess:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether the round is over.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "playing":
		*s = StateAwaitingGuess
	case "won":
		*s = StateWon
	case "lost":
		*s = StateLost
	default:
		return fmt.Errorf("unknown state %q", b)
	}
	return nil
}

// Outcome is the result of a round. Attempts is the winning attempt number
// when State is StateWon, and the number of guesses used otherwise.
type Outcome struct {
	State    State `json:"state"`
	Attempts int   `json:"attempts"`
}

// Won reports whether the round ended with the target guessed.
func (o Outcome) Won() bool { return o.State == StateWon }

// Mode distinguishes how a round's target was chosen.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
	ModeFixed  Mode = "fixed"
)
