// Package cryptors holds what every rotor device shares: the character
// domain, the PIN and the errors they report.
package cryptors

const (
	// DomainFirst and DomainLast bound the printable characters every rotor
	// maps ('!' through '}').
	DomainFirst    = 33
	DomainLast     = 125
	DomainSize     = DomainLast - DomainFirst + 1
	NumberOfRotors = 8
	PinLength      = NumberOfRotors
)

// Crypter is a substitution device that can be chained into a rotor stack.
// Apply_F substitutes in wiring order, Apply_G undoes Apply_F.
type Crypter interface {
	Apply_F(byte) (byte, error)
	Apply_G(byte) (byte, error)
}

func Encrypt(ecm Crypter, c byte) (byte, error) {
	return ecm.Apply_F(c)
}

func Decrypt(ecm Crypter, c byte) (byte, error) {
	return ecm.Apply_G(c)
}

// InDomain reports whether c is one of the characters a rotor can map.
func InDomain(c byte) bool {
	return c >= DomainFirst && c <= DomainLast
}

// Domain returns the character domain in ordinal order.
func Domain() []byte {
	d := make([]byte, DomainSize)
	for i := range d {
		d[i] = byte(DomainFirst + i)
	}
	return d
}
