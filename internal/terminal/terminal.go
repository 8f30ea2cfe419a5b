// Package terminal is the interactive front end: it prompts for guesses,
// draws the board with coloured tiles and runs the play-again menu.
// All game rules live in package game; this package only talks to the player.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
)

// Tile colours.
const (
	colorHit     = "#6aaa64"
	colorPresent = "#c9b458"
	colorMiss    = "#787c7e"
	colorText    = "#ffffff"
)

// ErrInputClosed is returned when input ends in the middle of a round.
var ErrInputClosed = errors.New("input closed")

// UI reads player input line by line and writes to a termenv output.
type UI struct {
	in  *bufio.Scanner
	out *termenv.Output
}

// New returns a UI over in and out. Pass termenv.WithProfile(termenv.Ascii)
// to disable colours.
func New(in io.Reader, out io.Writer, opts ...termenv.OutputOption) *UI {
	return &UI{in: bufio.NewScanner(in), out: termenv.NewOutput(out, opts...)}
}

func (u *UI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(u.out, format, args...)
}

// readLine returns the next input line, ErrInputClosed at end of input, or
// the scanner's own error (a failed read, an over-long line).
func (u *UI) readLine() (string, error) {
	if !u.in.Scan() {
		if err := u.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return u.in.Text(), nil
}

// PlayRound drives one session to its end and returns the outcome.
func (u *UI) PlayRound(s *game.Session) (game.Outcome, error) {
	for {
		u.printf("What word would you like to guess?\n")
		u.printf("Guesses left: %d/%d\n", s.Remaining(), game.AllowedGuesses)
		u.printf("\nYour word: ")

		var res game.Result
		for {
			line, err := u.readLine()
			if err != nil {
				return game.Outcome{}, err
			}
			u.printf("\n")
			res = s.Submit(line)
			if res.Status == game.Accepted {
				break
			}
			log.Debug().Str("gameId", s.ID()).Str("status", res.Status.String()).Msg("guess rejected")
			u.printf("%s\n\nYour word: ", rejection(res.Status))
		}

		u.printf("%s\n", u.Board(s.Transcript()))
		if out, done := s.Outcome(); done {
			if out.Won() {
				u.printf("You've successfully guessed the mystery word in %d/%d!\n\n", out.Attempts, game.AllowedGuesses)
			} else {
				u.printf("You ran out of guesses.\n\n")
			}
			return out, nil
		}
	}
}

func rejection(s game.Status) string {
	switch s {
	case game.RejectedWrongLength:
		return fmt.Sprintf("Words must be %d letters long.", game.WordLength)
	case game.RejectedNotInVocabulary:
		return "That word doesn't belong in the word list."
	}
	return "The round is over."
}

// Board draws the transcript: a row of coloured tiles per played guess,
// followed by its hint symbols, padded with empty rows. Without colour
// support the tiles carry no information, so the plain guess/hint board is
// drawn instead.
func (u *UI) Board(transcript []game.Entry) string {
	if u.out.Profile == termenv.Ascii {
		return game.Board(transcript)
	}
	var sb strings.Builder
	for _, row := range game.Render(transcript) {
		for _, t := range row.Tiles {
			sb.WriteString(u.tile(t, row.Played))
		}
		sb.WriteString("  ")
		sb.WriteString(row.Hints())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (u *UI) tile(t game.Tile, played bool) string {
	if !played {
		return " _ "
	}
	letter := " " + strings.ToUpper(string(t.Letter)) + " "
	bg := colorMiss
	switch t.Mark {
	case game.MarkHit:
		bg = colorHit
	case game.MarkPresent:
		bg = colorPresent
	}
	return u.out.String(letter).
		Foreground(u.out.Color(colorText)).
		Background(u.out.Color(bg)).
		Bold().
		String()
}

// Run plays rounds until the player quits. start supplies each new round.
func (u *UI) Run(start func() (*game.Session, error)) error {
	for {
		s, err := start()
		if err != nil {
			return fmt.Errorf("start round: %w", err)
		}
		if _, err := u.PlayRound(s); err != nil {
			return err
		}
		target, _ := s.Target()
		u.printf("Mystery word: %s\n", strings.ToUpper(target))

		again, err := u.playAgain()
		if err != nil {
			return err
		}
		if !again {
			u.printf("\nThanks for playing!\n")
			return nil
		}
		u.printf("\n")
	}
}

// playAgain shows the menu and reports whether another round was chosen.
// Closed input counts as quitting.
func (u *UI) playAgain() (bool, error) {
	u.printf("\nWhat would you like to do?\n")
	u.printf("1. Play again\n")
	u.printf("2. Quit game\n")
	u.printf("Enter your choice (1 or 2): ")
	for {
		line, err := u.readLine()
		if errors.Is(err, ErrInputClosed) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(line) {
		case "1":
			return true, nil
		case "2":
			return false, nil
		}
		u.printf("Please enter a valid choice (1 or 2): ")
	}
}
