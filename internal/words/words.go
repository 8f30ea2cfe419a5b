// internal/words/words.go
//
// Vocabulary management for the game engine.
//
// Responsibilities:
//   - Parse a whitespace-separated word list into an immutable Vocabulary.
//   - Enforce the load policy (strict by default, permissive on request).
//   - Answer membership queries in O(1) and draw uniformly random targets.
//
// Constraints:
//   • Words are exactly 5 ASCII letters, stored lowercase.
//   • Normalize (trim + lowercase) is the only normalization policy; callers
//     apply it at the validation boundary, Contains itself is exact.
//   • A Vocabulary is never mutated after Load returns, so it can be shared
//     across rounds and goroutines without locking.

package words

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/assets"
)

// WordLength is the number of letters in every vocabulary word.
const WordLength = 5

// Vocabulary is an immutable, ordered set of valid words.
type Vocabulary struct {
	list []string            // insertion order, duplicates removed
	set  map[string]struct{} // membership
}

type loadConfig struct {
	source     string
	permissive bool
	expected   int
}

// LoadOption tunes how Load treats the source.
type LoadOption func(*loadConfig)

// Permissive skips malformed tokens (logging each one) instead of failing.
// An empty result is still an error.
func Permissive() LoadOption {
	return func(c *loadConfig) { c.permissive = true }
}

// WithExpectedCount fails the load unless exactly n distinct words are read.
// Zero disables the check.
func WithExpectedCount(n int) LoadOption {
	return func(c *loadConfig) { c.expected = n }
}

// WithSourceName labels the source in errors and logs.
func WithSourceName(name string) LoadOption {
	return func(c *loadConfig) { c.source = name }
}

// Load parses whitespace-separated tokens from r.
func Load(r io.Reader, opts ...LoadOption) (*Vocabulary, error) {
	cfg := loadConfig{source: "reader"}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &Vocabulary{set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	index := 0
	for sc.Scan() {
		tok := sc.Text()
		index++
		w := Normalize(tok)
		if !isWord(w) {
			if !cfg.permissive {
				return nil, &LoadError{Source: cfg.source, Token: tok, Index: index, Err: ErrMalformedWord}
			}
			log.Warn().Str("source", cfg.source).Str("token", tok).Int("index", index).Msg("skipping malformed word")
			continue
		}
		v.add(w)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Source: cfg.source, Index: index, Err: err}
	}

	if len(v.list) == 0 {
		return nil, &LoadError{Source: cfg.source, Err: ErrEmptyVocabulary}
	}
	if cfg.expected > 0 && len(v.list) != cfg.expected {
		return nil, &LoadError{Source: cfg.source, Err: &CountError{Want: cfg.expected, Got: len(v.list)}}
	}
	log.Debug().Str("source", cfg.source).Int("words", len(v.list)).Msg("vocabulary loaded")
	return v, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts ...LoadOption) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Load(f, append([]LoadOption{WithSourceName(path)}, opts...)...)
}

// Default loads the embedded word list. It is a small starter list; a full
// deployment list is loaded with LoadFile.
func Default(opts ...LoadOption) (*Vocabulary, error) {
	f, err := assets.OpenVocab()
	if err != nil {
		return nil, &LoadError{Source: assets.VocabName, Err: err}
	}
	defer f.Close()
	return Load(f, append([]LoadOption{WithSourceName("embedded:" + assets.VocabName)}, opts...)...)
}

// FromWords builds a Vocabulary from an in-memory list using the strict policy.
func FromWords(list ...string) (*Vocabulary, error) {
	return Load(strings.NewReader(strings.Join(list, "\n")), WithSourceName("list"))
}

func (v *Vocabulary) add(w string) {
	if _, dup := v.set[w]; dup {
		return
	}
	v.set[w] = struct{}{}
	v.list = append(v.list, w)
}

// Contains reports whether w is in the vocabulary. The match is exact; pass
// the result of Normalize for user input.
func (v *Vocabulary) Contains(w string) bool {
	_, ok := v.set[w]
	return ok
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int { return len(v.list) }

// Words returns a copy of the words in load order.
func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.list...)
}

// At returns the i-th word in load order.
func (v *Vocabulary) At(i int) string { return v.list[i] }

// RandomWord draws a word uniformly from the vocabulary.
func (v *Vocabulary) RandomWord(rng Source) (string, error) {
	if v == nil || len(v.list) == 0 {
		return "", ErrEmptyVocabulary
	}
	return v.list[rng.IntN(len(v.list))], nil
}

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isWord reports whether s is WordLength lowercase ASCII letters.
func isWord(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
