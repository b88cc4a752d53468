// Package engine encrypts and decrypts whole messages with a rotor stack.
package engine

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigmacifra/cryptors"
	"github.com/bgallie/enigmacifra/cryptors/stack"
)

// EncryptMessage encrypts plaintext one character at a time, advancing the
// session rotors after every character.  Nothing is returned if any
// character can't be encrypted.
func EncryptMessage(session *stack.Stack, plaintext string) (string, error) {
	return process(session, plaintext, cryptors.Encrypt)
}

// DecryptMessage inverts EncryptMessage for the same session rotors.  The
// rotors advance exactly as they do while encrypting, so character n is
// decrypted against the state that encrypted it.
func DecryptMessage(session *stack.Stack, ciphertext string) (string, error) {
	return process(session, ciphertext, cryptors.Decrypt)
}

func process(session *stack.Stack, msg string, apply func(cryptors.Crypter, byte) (byte, error)) (string, error) {
	if session == nil {
		return "", fmt.Errorf("%w: no session rotors", cryptors.ErrInvalidArgument)
	}
	var out strings.Builder
	out.Grow(len(msg))
	current := session
	for i := 0; i < len(msg); i++ {
		c, err := apply(current, msg[i])
		if err != nil {
			return "", fmt.Errorf("character %d: %w", i+1, err)
		}
		out.WriteByte(c)
		current = current.Advance(true)
	}
	return out.String(), nil
}

// EnigmaEngine holds the session rotors derived from a PIN and a base rotor
// stack.  Every Encrypt and Decrypt call starts from those same rotors.
type EnigmaEngine struct {
	session *stack.Stack
}

// Init derives the session rotors for pin from base.
func (e *EnigmaEngine) Init(pin cryptors.PIN, base *stack.Stack) error {
	s, err := stack.Derive(pin, base)
	if err != nil {
		return err
	}
	e.session = s
	return nil
}

func (e *EnigmaEngine) Encrypt(plaintext string) (string, error) {
	return EncryptMessage(e.session, plaintext)
}

func (e *EnigmaEngine) Decrypt(ciphertext string) (string, error) {
	return DecryptMessage(e.session, ciphertext)
}
