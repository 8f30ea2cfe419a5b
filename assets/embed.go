// Package assets embeds the default vocabulary so the binary runs without
// any word file configured.
package assets

import (
	"embed"
	"io"
)

//go:embed vocab.txt
var FS embed.FS

// VocabName is the embedded default word list.
const VocabName = "vocab.txt"

// OpenVocab returns a reader over the embedded default vocabulary.
// Callers must close it.
func OpenVocab() (io.ReadCloser, error) {
	return FS.Open(VocabName)
}
