package certificate

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
)

// codeAlphabet leaves out 0/O and 1/I so codes survive being read aloud or retyped.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const DefaultCodeMaxAttempts = 10

type CodeExistenceChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

type CodeGenerator struct {
	prefix      string
	maxAttempts int
	random      func() (string, error)
}

func NewCodeGenerator(prefix string, maxAttempts int) (*CodeGenerator, error) {
	return NewCodeGeneratorWithSource(prefix, maxAttempts, randomBody)
}

// NewCodeGeneratorWithSource builds a generator whose code bodies come from
// source instead of crypto/rand. source must return CodeBodyLength characters
// from the code alphabet.
func NewCodeGeneratorWithSource(prefix string, maxAttempts int, source func() (string, error)) (*CodeGenerator, error) {
	if source == nil {
		source = randomBody
	}
	if !ValidPrefix(prefix) {
		return nil, ErrInvalidCodePrefix
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultCodeMaxAttempts
	}
	return &CodeGenerator{
		prefix:      prefix,
		maxAttempts: maxAttempts,
		random:      source,
	}, nil
}

// Generate returns a code not yet present in the store. After maxAttempts
// collisions it gives up checking and returns the last candidate; a duplicate
// then surfaces as a unique-constraint failure at insert time.
func (g *CodeGenerator) Generate(ctx context.Context, checker CodeExistenceChecker) (Code, error) {
	var candidate Code
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		body, err := g.random()
		if err != nil {
			return "", err
		}
		candidate = Code(g.prefix + body)

		exists, err := checker.CodeExists(ctx, candidate.String())
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	slog.Warn("code generation exhausted collision checks, returning last candidate",
		"attempts", g.maxAttempts)
	return candidate, nil
}

func randomBody() (string, error) {
	buf := make([]byte, CodeBodyLength)
	limit := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
