// rotor
package rotor

import (
	"bytes"
	"fmt"

	"github.com/bgallie/enigmacifra/cryptors"
)

// Rotor is a bijective substitution over the printable character domain.
// The keys and values are kept in their original order so the rotor can be
// rotated by shifting the values against the fixed keys.
type Rotor struct {
	keys     [cryptors.DomainSize]byte
	values   [cryptors.DomainSize]byte
	keyPos   [cryptors.DomainLast + 1]int // character -> position in keys
	valuePos [cryptors.DomainLast + 1]int // character -> position in values
}

// New creates a rotor mapping keys[i] to values[i].  Both sequences must be
// permutations of the character domain.
func New(keys, values []byte) (*Rotor, error) {
	if len(keys) != cryptors.DomainSize || len(values) != cryptors.DomainSize {
		return nil, fmt.Errorf("%w: rotor must map %d characters, got %d keys and %d values",
			cryptors.ErrInvalidArgument, cryptors.DomainSize, len(keys), len(values))
	}
	if err := checkPermutation("key", keys); err != nil {
		return nil, err
	}
	if err := checkPermutation("value", values); err != nil {
		return nil, err
	}
	var r Rotor
	copy(r.keys[:], keys)
	copy(r.values[:], values)
	r.index()
	return &r, nil
}

func checkPermutation(kind string, seq []byte) error {
	var seen [cryptors.DomainLast + 1]bool
	for _, c := range seq {
		if !cryptors.InDomain(c) {
			return fmt.Errorf("%w: rotor %s %q is outside the character domain", cryptors.ErrInvalidArgument, kind, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: rotor %s %q appears more than once", cryptors.ErrInvalidArgument, kind, c)
		}
		seen[c] = true
	}
	return nil
}

func (r *Rotor) index() {
	for i := range r.keys {
		r.keyPos[r.keys[i]] = i
		r.valuePos[r.values[i]] = i
	}
}

// Rotate returns a new rotor whose values are shifted x positions against
// the keys, so keys[j] maps to values[(j-x) mod size].  Negative x rotates
// the other way.  The receiver is left untouched.
func (r *Rotor) Rotate(x int) *Rotor {
	n := cryptors.DomainSize
	x %= n
	if x < 0 {
		x += n
	}
	nr := Rotor{keys: r.keys}
	for j := range r.values {
		nr.values[j] = r.values[(j-x+n)%n]
	}
	nr.index()
	return &nr
}

// Keys returns a copy of the keys in rotor order.
func (r *Rotor) Keys() []byte {
	return append([]byte(nil), r.keys[:]...)
}

// Values returns a copy of the values in rotor order.
func (r *Rotor) Values() []byte {
	return append([]byte(nil), r.values[:]...)
}

// Apply_F substitutes c by the value its key maps to.
func (r *Rotor) Apply_F(c byte) (byte, error) {
	if !cryptors.InDomain(c) {
		return 0, fmt.Errorf("%w: %q is not in the rotor keys", cryptors.ErrLookup, c)
	}
	return r.values[r.keyPos[c]], nil
}

// Apply_G substitutes c by the key that maps to it.
func (r *Rotor) Apply_G(c byte) (byte, error) {
	if !cryptors.InDomain(c) {
		return 0, fmt.Errorf("%w: %q is not in the rotor values", cryptors.ErrLookup, c)
	}
	return r.keys[r.valuePos[c]], nil
}

// Equal reports whether both rotors have the same keys and values in the same order.
func (r *Rotor) Equal(o *Rotor) bool {
	return r.keys == o.keys && r.values == o.values
}

func (r *Rotor) String() string {
	var output bytes.Buffer
	output.WriteString("rotor.New(\n")
	output.WriteString(fmt.Sprintf("\t[]byte(%q),\n", r.keys[:]))
	output.WriteString(fmt.Sprintf("\t[]byte(%q))", r.values[:]))
	return output.String()
}
