package terminal

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

func newUI(input string) (*UI, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, termenv.WithProfile(termenv.Ascii)), &out
}

func dealer(t *testing.T) *game.Dealer {
	t.Helper()
	v, err := words.FromWords("crane", "slate", "pilot", "tiger", "lumpy", "hound", "speed")
	require.NoError(t, err)
	return game.NewDealer(v, words.NewSeededSource(1))
}

func fixed(t *testing.T, d *game.Dealer, target string) func() (*game.Session, error) {
	return func() (*game.Session, error) { return d.StartWith(target, game.ModeFixed) }
}

func TestPlayRound_RepromptsWithoutSpendingGuesses(t *testing.T) {
	ui, out := newUI("cran\nzzzzz\nslate\ncrane\n")
	s, err := dealer(t).StartWith("crane", game.ModeFixed)
	require.NoError(t, err)

	o, err := ui.PlayRound(s)
	require.NoError(t, err)
	assert.True(t, o.Won())
	assert.Equal(t, 2, o.Attempts)

	text := out.String()
	assert.Contains(t, text, "Words must be 5 letters long.")
	assert.Contains(t, text, "That word doesn't belong in the word list.")
	assert.Contains(t, text, "Guesses left: 6/6")
	assert.Contains(t, text, "Guesses left: 5/6")
	assert.NotContains(t, text, "Guesses left: 4/6")
	assert.Contains(t, text, "SLATE\n--!-!\n")
	assert.Contains(t, text, "You've successfully guessed the mystery word in 2/6!")
}

func TestPlayRound_Loss(t *testing.T) {
	ui, out := newUI("slate\npilot\ntiger\nlumpy\nhound\nspeed\n")
	s, err := dealer(t).StartWith("crane", game.ModeFixed)
	require.NoError(t, err)

	o, err := ui.PlayRound(s)
	require.NoError(t, err)
	assert.False(t, o.Won())
	assert.Contains(t, out.String(), "You ran out of guesses.")
}

func TestPlayRound_InputClosed(t *testing.T) {
	ui, _ := newUI("slate\n")
	s, err := dealer(t).StartWith("crane", game.ModeFixed)
	require.NoError(t, err)

	_, err = ui.PlayRound(s)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestRun_PlayAgainMenu(t *testing.T) {
	ui, out := newUI("crane\n3\n1\ncrane\n2\n")
	d := dealer(t)

	require.NoError(t, ui.Run(fixed(t, d, "crane")))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Mystery word: CRANE"))
	assert.Contains(t, text, "Please enter a valid choice (1 or 2): ")
	assert.True(t, strings.HasSuffix(text, "Thanks for playing!\n"))
}

func TestRun_EOFAtMenuQuits(t *testing.T) {
	ui, out := newUI("crane\n")
	require.NoError(t, ui.Run(fixed(t, dealer(t), "crane")))
	assert.Contains(t, out.String(), "Thanks for playing!")
}

func TestRun_StartFailure(t *testing.T) {
	ui, _ := newUI("")
	d := game.NewDealer(&words.Vocabulary{}, words.NewSeededSource(1))
	err := ui.Run(d.Start)
	assert.ErrorIs(t, err, words.ErrEmptyVocabulary)
}

func TestBoard_PlainWithoutColour(t *testing.T) {
	ui, _ := newUI("")
	lines := strings.Split(strings.TrimSuffix(ui.Board(nil), "\n"), "\n")
	require.Len(t, lines, 2*game.AllowedGuesses)
	for i := 0; i < len(lines); i += 2 {
		assert.Equal(t, "", lines[i])
		assert.Equal(t, "-----", lines[i+1])
	}
}

func TestBoard_ColouredTiles(t *testing.T) {
	var out bytes.Buffer
	ui := New(strings.NewReader(""), &out, termenv.WithProfile(termenv.ANSI256))
	tr := []game.Entry{{Guess: "slate", Feedback: game.Score("crane", "slate")}}

	lines := strings.Split(strings.TrimSuffix(ui.Board(tr), "\n"), "\n")
	require.Len(t, lines, game.AllowedGuesses)
	assert.Contains(t, lines[0], "\x1b[")
	assert.Contains(t, lines[0], " S ")
	assert.True(t, strings.HasSuffix(lines[0], "  --!-!"))
	for _, l := range lines[1:] {
		assert.Equal(t, " _  _  _  _  _   -----", l)
	}
}

func TestPlayRound_ReadError(t *testing.T) {
	boom := errors.New("tty gone")
	ui := New(iotest.ErrReader(boom), io.Discard, termenv.WithProfile(termenv.Ascii))
	s, err := dealer(t).StartWith("crane", game.ModeFixed)
	require.NoError(t, err)

	_, err = ui.PlayRound(s)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInputClosed)
}

func TestPlayRound_LineTooLong(t *testing.T) {
	ui, _ := newUI(strings.Repeat("a", bufio.MaxScanTokenSize+1) + "\n")
	s, err := dealer(t).StartWith("crane", game.ModeFixed)
	require.NoError(t, err)

	_, err = ui.PlayRound(s)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestRun_MenuReadError(t *testing.T) {
	boom := errors.New("tty gone")
	in := io.MultiReader(strings.NewReader("crane\n"), iotest.ErrReader(boom))
	ui := New(in, io.Discard, termenv.WithProfile(termenv.Ascii))

	err := ui.Run(fixed(t, dealer(t), "crane"))
	assert.ErrorIs(t, err, boom)
}
