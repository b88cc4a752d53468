/*
Copyright © 2024 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/bgallie/enigmacifra/cryptors"
)

const maxPinAttempts = 3

var errPinRejected = fmt.Errorf("%w: maximum PIN attempts reached", cryptors.ErrInvalidArgument)

type pinState int

const (
	awaitingPin pinState = iota
	awaitingConfirmation
	rejected
	accepted
)

// secretReader reads one line of input without echoing it.
type secretReader interface {
	ReadSecret(prompt string) (string, error)
}

type terminalReader struct {
	in  *os.File
	out io.Writer
}

func (t terminalReader) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	b, err := term.ReadPassword(int(t.in.Fd()))
	fmt.Fprintln(t.out, "")
	return string(b), err
}

// pinEntry prompts for a PIN, optionally asking for it a second time, and
// gives up after maxAttempts invalid or mismatched entries.
type pinEntry struct {
	reader      secretReader
	out         io.Writer
	prompt      string
	confirm     bool
	maxAttempts int

	state    pinState
	attempts int
}

func (e *pinEntry) run() (cryptors.PIN, error) {
	var entered string
	var pin cryptors.PIN
	e.state, e.attempts = awaitingPin, 0
	for {
		switch e.state {
		case awaitingPin:
			s, err := e.reader.ReadSecret(e.prompt)
			if err != nil {
				return nil, err
			}
			p, err := cryptors.ParsePIN(s)
			if err != nil {
				fmt.Fprintf(e.out, "Invalid PIN. Please enter a %d-digit numeric PIN.\n", cryptors.PinLength)
				e.fail()
				continue
			}
			entered, pin = s, p
			if e.confirm {
				e.state = awaitingConfirmation
			} else {
				e.state = accepted
			}
		case awaitingConfirmation:
			s, err := e.reader.ReadSecret("Please confirm your PIN: ")
			if err != nil {
				return nil, err
			}
			if s != entered {
				fmt.Fprintln(e.out, "----PINs didn't match----")
				e.fail()
				continue
			}
			e.state = accepted
		case accepted:
			return pin, nil
		case rejected:
			if e.maxAttempts > 1 {
				fmt.Fprintln(e.out, "Maximum attempts reached. Exiting.")
			}
			return nil, errPinRejected
		}
	}
}

func (e *pinEntry) fail() {
	e.attempts++
	if e.attempts >= e.maxAttempts {
		e.state = rejected
	} else {
		e.state = awaitingPin
	}
}

// obtainPIN gets the PIN used to key the rotors from either:
// 1. The 'ENIGMA_PIN' environment variable, .env or config file (less secure)
// 2. User input from the terminal (most secure)
// A PIN typed at the terminal for encryption must be confirmed.
func obtainPIN(confirm bool, action string) (cryptors.PIN, error) {
	if viper.IsSet("pin") {
		return cryptors.ParsePIN(viper.GetString("pin"))
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("you must supply a PIN: stdin is not a terminal and ENIGMA_PIN is not set")
	}
	e := pinEntry{
		reader:      terminalReader{in: os.Stdin, out: os.Stderr},
		out:         os.Stderr,
		prompt:      fmt.Sprintf("Enter %d-digit PIN to %s your message: ", cryptors.PinLength, action),
		confirm:     confirm,
		maxAttempts: 1,
	}
	if confirm {
		e.maxAttempts = maxPinAttempts
	}
	return e.run()
}
