// internal/game/engine.go
//
// Scoring for a single guess.
//
// Score implements the two-pass, consume-on-use algorithm:
//   Pass 1: exact matches become hits; the remaining target letters are counted.
//   Pass 2: left to right, a non-hit guess letter is present while an unused
//           copy of it remains in the count, otherwise it is a miss.
//
// Hits always consume first, so a letter can never be claimed more times than
// it occurs in the target.
package game

// Score compares guess against target. Both must be WordLength lowercase
// letters; callers validate first. Any other length panics with
// *LengthMismatchError.
func Score(target, guess string) Feedback {
	if len(target) != WordLength || len(guess) != WordLength {
		panic(&LengthMismatchError{Target: target, Guess: guess})
	}

	var res Feedback
	// Counts of unconsumed target letters, indexed by byte.
	var counts [256]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == target[i] {
			res[i] = MarkHit
		} else {
			counts[target[i]]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == MarkHit {
			continue
		}
		c := guess[i]
		if counts[c] > 0 {
			res[i] = MarkPresent
			counts[c]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}
