// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"crypto/rand"
	"github.com/cockroachdb/errors"
	"io"
	"math/big"
)

// MinGenerateLength is the shortest password that can hold one character of
// every class.
const MinGenerateLength = 4

// ErrInvalidLength is returned when a password is requested with fewer than
// MinGenerateLength characters.
var ErrInvalidLength = errors.New("invalid password length")

var alphabet = Uppercase + Lowercase + Digits + Symbols

// Generator builds random passwords that pass every composition check.
type Generator struct {
	source io.Reader
}

// NewGenerator uses source for every random draw. Passing nil selects crypto/rand.
func NewGenerator(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}

	return &Generator{source: source}
}

var defaultGenerator = NewGenerator(nil)

// Generate returns a random password of the given length using crypto/rand.
func Generate(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// Generate seeds one uppercase letter, one lowercase letter, one digit and one
// symbol, fills the rest uniformly from all four classes and shuffles the lot.
func (g *Generator) Generate(length int) (string, error) {
	if length < MinGenerateLength {
		return "", errors.Wrapf(ErrInvalidLength, "need at least %d characters, got %d", MinGenerateLength, length)
	}

	pw := make([]byte, 0, length)
	for _, set := range []string{Uppercase, Lowercase, Digits, Symbols} {
		c, err := g.pick(set)
		if err != nil {
			return "", err
		}
		pw = append(pw, c)
	}

	for len(pw) < length {
		c, err := g.pick(alphabet)
		if err != nil {
			return "", err
		}
		pw = append(pw, c)
	}

	if err := g.shuffle(pw); err != nil {
		return "", err
	}

	return string(pw), nil
}

func (g *Generator) pick(set string) (byte, error) {
	n, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}

	return set[n], nil
}

// shuffle is a Fisher-Yates shuffle.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}

	return nil
}

func (g *Generator) intn(max int) (int, error) {
	n, err := rand.Int(g.source, big.NewInt(int64(max)))
	if err != nil {
		return 0, errors.Wrap(err, "reading random source")
	}

	return int(n.Int64()), nil
}
