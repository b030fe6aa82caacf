package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// GenerateID gera os ids curtos de monitores e relatórios exportados
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
