package cryptors

import "fmt"

// PIN holds one rotation offset (0-9) per rotor.
type PIN []int

// ParsePIN converts an 8 digit string into a PIN.  The offending input is
// never echoed back in the error.
func ParsePIN(s string) (PIN, error) {
	if len(s) != PinLength {
		return nil, fmt.Errorf("%w: PIN must be %d digits, got %d", ErrInvalidArgument, PinLength, len(s))
	}
	pin := make(PIN, PinLength)
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("%w: PIN must be numeric", ErrInvalidArgument)
		}
		pin[i] = int(s[i] - '0')
	}
	return pin, nil
}

// Validate checks that the PIN has one digit for every rotor.
func (p PIN) Validate() error {
	if len(p) != PinLength {
		return fmt.Errorf("%w: PIN must have %d digits, got %d", ErrInvalidArgument, PinLength, len(p))
	}
	for i, d := range p {
		if d < 0 || d > 9 {
			return fmt.Errorf("%w: PIN digit %d is not in 0-9", ErrInvalidArgument, i+1)
		}
	}
	return nil
}

// String masks the PIN so it can't leak through a log line or %v.
func (p PIN) String() string {
	return "********"
}
