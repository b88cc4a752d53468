// Package stack chains the rotors of one cipher session.  A Stack is never
// modified after it is built; deriving, rotating and advancing all return a
// new Stack, so a base stack can be shared by any number of sessions.
package stack

import (
	"fmt"

	"github.com/bgallie/enigmacifra/cryptors"
	"github.com/bgallie/enigmacifra/cryptors/rotor"
)

type Stack struct {
	rotors [cryptors.NumberOfRotors]*rotor.Rotor
}

// New builds a stack from exactly cryptors.NumberOfRotors rotors, in wiring order.
func New(rotors ...*rotor.Rotor) (*Stack, error) {
	if len(rotors) != cryptors.NumberOfRotors {
		return nil, fmt.Errorf("%w: a rotor stack needs %d rotors, got %d",
			cryptors.ErrInvalidArgument, cryptors.NumberOfRotors, len(rotors))
	}
	var s Stack
	for i, r := range rotors {
		if r == nil {
			return nil, fmt.Errorf("%w: rotor %d is nil", cryptors.ErrInvalidArgument, i)
		}
		s.rotors[i] = r
	}
	return &s, nil
}

// Rotors returns the rotors in wiring order.
func (s *Stack) Rotors() []*rotor.Rotor {
	return append([]*rotor.Rotor(nil), s.rotors[:]...)
}

// Rotate returns a stack with the i-th rotor rotated by offsets[i].
func (s *Stack) Rotate(offsets [cryptors.NumberOfRotors]int) *Stack {
	var ns Stack
	for i, r := range s.rotors {
		ns.rotors[i] = r.Rotate(offsets[i])
	}
	return &ns
}

// Derive builds the session rotors for pin from the base stack.  The same
// pin and base always give the same result.
func Derive(pin cryptors.PIN, base *Stack) (*Stack, error) {
	if err := pin.Validate(); err != nil {
		return nil, err
	}
	if base == nil {
		return nil, fmt.Errorf("%w: no base rotor stack", cryptors.ErrInvalidArgument)
	}
	var offsets [cryptors.NumberOfRotors]int
	copy(offsets[:], pin)
	return base.Rotate(offsets), nil
}

// Apply_F passes c through every rotor from first to last.
func (s *Stack) Apply_F(c byte) (byte, error) {
	var err error
	for i, r := range s.rotors {
		if c, err = r.Apply_F(c); err != nil {
			return 0, fmt.Errorf("rotor %d: %w", i, err)
		}
	}
	return c, nil
}

// Apply_G reverses Apply_F, passing c backwards from the last rotor to the first.
func (s *Stack) Apply_G(c byte) (byte, error) {
	var err error
	for i := len(s.rotors) - 1; i >= 0; i-- {
		if c, err = s.rotors[i].Apply_G(c); err != nil {
			return 0, fmt.Errorf("rotor %d: %w", i, err)
		}
	}
	return c, nil
}

// Advance returns the next session state, every rotor turned one position:
// forward when forEncrypt is true, backward otherwise.  Both message
// directions step with forEncrypt set; see engine.DecryptMessage.
func (s *Stack) Advance(forEncrypt bool) *Stack {
	step := 1
	if !forEncrypt {
		step = -1
	}
	var offsets [cryptors.NumberOfRotors]int
	for i := range offsets {
		offsets[i] = step
	}
	return s.Rotate(offsets)
}

// Equal reports whether both stacks hold identical rotors in the same order.
func (s *Stack) Equal(o *Stack) bool {
	for i := range s.rotors {
		if !s.rotors[i].Equal(o.rotors[i]) {
			return false
		}
	}
	return true
}
