// internal/game/errors.go
//
// Errors returned by sessions and the dealer.

package game

import (
	"errors"
	"fmt"
)

var (
	ErrWrongLength     = errors.New("invalid guess")
	ErrNotInVocabulary = errors.New("not in word list")
	ErrRoundOver       = errors.New("game finished")
	ErrUnknownTarget   = errors.New("target not in word list")
	ErrBadSnapshot     = errors.New("corrupt game snapshot")
)

// LengthMismatchError is the panic value of Score when called with words that
// are not WordLength bytes long.
type LengthMismatchError struct {
	Target, Guess string
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("score: want %d-letter words, got target %q guess %q", WordLength, e.Target, e.Guess)
}
