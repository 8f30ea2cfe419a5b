// internal/game/session.go
//
// Session runs one round: a hidden target, up to AllowedGuesses accepted
// guesses, and a transcript of scored guesses.
//
// State transitions:
//   - Rejected guesses (wrong length, unknown word, round over) change nothing.
//   - An accepted guess equal to the target → StateWon.
//   - Otherwise the AllowedGuesses-th accepted guess → StateLost.
//
// A Session is not safe for concurrent use; transports load, mutate and
// save it one request at a time.
package game

import (
	"time"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

// Status classifies the result of a submission.
type Status int

const (
	Accepted Status = iota
	RejectedWrongLength
	RejectedNotInVocabulary
	RejectedRoundOver
)

func (s Status) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case RejectedWrongLength:
		return "wrong_length"
	case RejectedNotInVocabulary:
		return "not_in_vocabulary"
	case RejectedRoundOver:
		return "round_over"
	}
	return "unknown"
}

// Result is returned by Submit. Feedback is only meaningful when Status is
// Accepted.
type Result struct {
	Status   Status
	Guess    string // normalized guess
	Feedback Feedback
	State    State // round state after the submission
}

// Err maps a rejection to its sentinel error, nil when accepted.
func (r Result) Err() error {
	switch r.Status {
	case RejectedWrongLength:
		return ErrWrongLength
	case RejectedNotInVocabulary:
		return ErrNotInVocabulary
	case RejectedRoundOver:
		return ErrRoundOver
	}
	return nil
}

// Session holds the state of a single round.
type Session struct {
	id         string
	mode       Mode
	vocab      *words.Vocabulary
	target     string
	transcript []Entry
	state      State
	startedAt  time.Time
}

func newSession(id string, mode Mode, vocab *words.Vocabulary, target string, startedAt time.Time) *Session {
	return &Session{
		id:         id,
		mode:       mode,
		vocab:      vocab,
		target:     target,
		transcript: make([]Entry, 0, AllowedGuesses),
		startedAt:  startedAt,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Mode reports how the target was chosen.
func (s *Session) Mode() Mode { return s.mode }

// StartedAt is when the round began.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// State returns the current round state.
func (s *Session) State() State { return s.state }

// Remaining returns how many guesses are left.
func (s *Session) Remaining() int {
	if s.state.Terminal() {
		return 0
	}
	return AllowedGuesses - len(s.transcript)
}

// Submit validates raw player input and, if accepted, scores it and advances
// the round. Input is normalized with words.Normalize before validation.
func (s *Session) Submit(raw string) Result {
	guess := words.Normalize(raw)
	res := Result{Guess: guess, State: s.state}

	switch {
	case s.state.Terminal():
		res.Status = RejectedRoundOver
		return res
	case utf8.RuneCountInString(guess) != WordLength:
		res.Status = RejectedWrongLength
		return res
	case !s.vocab.Contains(guess):
		res.Status = RejectedNotInVocabulary
		return res
	}

	fb := Score(s.target, guess)
	s.transcript = append(s.transcript, Entry{Guess: guess, Feedback: fb})

	if guess == s.target {
		s.state = StateWon
	} else if len(s.transcript) == AllowedGuesses {
		s.state = StateLost
	}

	res.Status = Accepted
	res.Feedback = fb
	res.State = s.state
	return res
}

// Transcript returns a copy of the accepted guesses in attempt order.
func (s *Session) Transcript() []Entry {
	return append([]Entry(nil), s.transcript...)
}

// Target reveals the hidden word once the round is over.
func (s *Session) Target() (string, bool) {
	if !s.state.Terminal() {
		return "", false
	}
	return s.target, true
}

// Outcome reports the round result; ok is false while the round is running.
func (s *Session) Outcome() (Outcome, bool) {
	return Outcome{State: s.state, Attempts: len(s.transcript)}, s.state.Terminal()
}

// Snapshot is the serializable form of a Session used by stores.
type Snapshot struct {
	ID        string    `json:"id"`
	Mode      Mode      `json:"mode"`
	Target    string    `json:"target"`
	Guesses   []string  `json:"guesses"`
	StartedAt time.Time `json:"startedAt"`
}

// Snapshot captures the session for persistence.
func (s *Session) Snapshot() Snapshot {
	guesses := make([]string, len(s.transcript))
	for i, e := range s.transcript {
		guesses[i] = e.Guess
	}
	return Snapshot{
		ID:        s.id,
		Mode:      s.mode,
		Target:    s.target,
		Guesses:   guesses,
		StartedAt: s.startedAt,
	}
}
