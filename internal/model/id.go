package model

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 24
)

// NewID returns a fresh opaque identifier.
func NewID() string {
	return gonanoid.MustGenerate(idAlphabet, idLength)
}
