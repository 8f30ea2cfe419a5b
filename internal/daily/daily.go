// Package daily picks a deterministic target per UTC day, so every player
// who starts a daily round on the same date gets the same word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Target returns the day's word from vocab, and its date key.
func Target(vocab *words.Vocabulary, date time.Time, salt string) (word, key string, err error) {
	if vocab == nil || vocab.Len() == 0 {
		return "", "", words.ErrEmptyVocabulary
	}
	return vocab.At(WordIndex(date, salt, vocab.Len())), DateKey(date), nil
}
