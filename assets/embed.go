// Package assets embeds the default word list so the server can start
// without a VOCAB file configured.
package assets

import (
	"embed"
	"io/fs"
)

// VocabName is the embedded default vocabulary file.
const VocabName = "vocab.txt"

//go:embed vocab.txt
var FS embed.FS

// OpenVocab opens the embedded default vocabulary.
func OpenVocab() (fs.File, error) {
	return FS.Open(VocabName)
}
