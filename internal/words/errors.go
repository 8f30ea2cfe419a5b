// internal/words/errors.go
//
// Errors returned while loading a vocabulary.

package words

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad matches every vocabulary load failure.
	ErrLoad = errors.New("words: load failed")
	// ErrEmptyVocabulary is returned when a load yields no words or a draw
	// is attempted on an empty vocabulary.
	ErrEmptyVocabulary = errors.New("words: vocabulary is empty")
	// ErrMalformedWord marks a token that is not 5 letters a–z.
	ErrMalformedWord = errors.New("words: malformed word")
	// ErrWordCount marks a source whose word count differs from the expected one.
	ErrWordCount = errors.New("words: unexpected word count")
)

// LoadError describes why a vocabulary source could not be used.
// It matches ErrLoad and its cause with errors.Is.
type LoadError struct {
	Source string
	Token  string // offending token, if any
	Index  int    // 1-based token position, if known
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Token != "":
		return fmt.Sprintf("load %s: token %d %q: %v", e.Source, e.Index, e.Token, e.Err)
	default:
		return fmt.Sprintf("load %s: %v", e.Source, e.Err)
	}
}

func (e *LoadError) Unwrap() []error { return []error{ErrLoad, e.Err} }

// CountError reports a word count mismatch.
type CountError struct {
	Want, Got int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%v: want %d, got %d", ErrWordCount, e.Want, e.Got)
}

func (e *CountError) Unwrap() error { return ErrWordCount }
