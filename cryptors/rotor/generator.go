package rotor

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"

	"github.com/bgallie/enigmacifra/cryptors"
)

// Shuffler randomly permutes n elements through swap.  *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a ChaCha8 generator seeded from the operating system.
func NewSource() (*rand.Rand, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seeding rotor generator: %w", err)
	}
	return rand.New(rand.NewChaCha8(seed)), nil
}

// Generate creates count new rotors.  Each one shuffles the character
// domain afresh and pairs the shuffled sequence with its own reverse.
// A nil shuffler uses NewSource.
func Generate(count int, s Shuffler) ([]*Rotor, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: rotor count must be positive, got %d", cryptors.ErrInvalidArgument, count)
	}
	if s == nil {
		src, err := NewSource()
		if err != nil {
			return nil, err
		}
		s = src
	}
	rotors := make([]*Rotor, 0, count)
	for i := 0; i < count; i++ {
		keys := cryptors.Domain()
		s.Shuffle(len(keys), func(a, b int) {
			keys[a], keys[b] = keys[b], keys[a]
		})
		values := make([]byte, len(keys))
		for j, k := range keys {
			values[len(keys)-1-j] = k
		}
		r, err := New(keys, values)
		if err != nil {
			return nil, err
		}
		rotors = append(rotors, r)
	}
	return rotors, nil
}
