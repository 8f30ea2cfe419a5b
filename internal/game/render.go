// internal/game/render.go
//
// Board rendering: hint symbols (! hit, & present, - miss) and the
// six-row board the terminal and API clients draw from.

package game

import "strings"

// Display symbols for marks.
const (
	SymbolHit     = "!"
	SymbolPresent = "&"
	SymbolMiss    = "-"
)

// Symbol returns the single-character display form of m.
func Symbol(m Mark) string {
	switch m {
	case MarkHit:
		return SymbolHit
	case MarkPresent:
		return SymbolPresent
	}
	return SymbolMiss
}

// Tile is one letter cell of the board.
type Tile struct {
	Letter byte // 0 for an unplayed cell
	Mark   Mark
}

// Row is one board line; unplayed rows have Played false.
type Row struct {
	Tiles  [WordLength]Tile
	Played bool
}

// Guess returns the row's letters, or an empty string for an unplayed row.
func (r Row) Guess() string {
	if !r.Played {
		return ""
	}
	b := make([]byte, WordLength)
	for i, t := range r.Tiles {
		b[i] = t.Letter
	}
	return string(b)
}

// Hints returns the row's marks as symbols; unplayed rows are all misses.
func (r Row) Hints() string {
	var sb strings.Builder
	for _, t := range r.Tiles {
		if !r.Played {
			sb.WriteString(SymbolMiss)
			continue
		}
		sb.WriteString(Symbol(t.Mark))
	}
	return sb.String()
}

// Render maps a transcript to AllowedGuesses board rows, played rows first.
func Render(transcript []Entry) []Row {
	rows := make([]Row, AllowedGuesses)
	for i, e := range transcript {
		if i >= AllowedGuesses {
			break
		}
		rows[i].Played = true
		for j := 0; j < WordLength && j < len(e.Guess); j++ {
			rows[i].Tiles[j] = Tile{Letter: e.Guess[j], Mark: e.Feedback[j]}
		}
	}
	return rows
}

// Board renders the transcript as plain text: each row is the guess in
// upper case followed by its hint line.
func Board(transcript []Entry) string {
	var sb strings.Builder
	for _, r := range Render(transcript) {
		sb.WriteString(strings.ToUpper(r.Guess()))
		sb.WriteByte('\n')
		sb.WriteString(r.Hints())
		sb.WriteByte('\n')
	}
	return sb.String()
}
