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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"golang.org/x/term"

	"github.com/bgallie/enigmacifra/rotorfile"
)

const pemType = "ENIGMACIFRA Encrypted Message"

var errCompressedPlain = errors.New("compression requires --useASCII85 or PEM input")

var (
	useASCII85  bool
	usePem      bool
	compression bool
)

// armor selects how ciphertext is wrapped on output and unwrapped on input.
type armor struct {
	ascii85  bool
	pem      bool
	compress bool
}

// interactive reports whether messages are typed at the terminal rather
// than read from a file or pipe.
func interactive() bool {
	return (inputFileName == "" || inputFileName == "-") && term.IsTerminal(int(os.Stdin.Fd()))
}

// readLine reads a single line, without its line ending.
func readLine(rdr *bufio.Reader) (string, error) {
	line, err := rdr.ReadString('\n')
	if err != nil && !(err == io.EOF && len(line) > 0) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readMessages returns every line of rdr; each line is a separate message.
func readMessages(rdr io.Reader) ([]string, error) {
	var msgs []string
	scanner := bufio.NewScanner(rdr)
	for scanner.Scan() {
		msgs = append(msgs, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return msgs, scanner.Err()
}

// transformLines applies fn to every message.  Nothing is returned unless
// every message succeeds.
func transformLines(msgs []string, fn func(string) (string, error)) ([]string, error) {
	out := make([]string, 0, len(msgs))
	for i, m := range msgs {
		t, err := fn(m)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func joinLines(msgs []string) string {
	if len(msgs) == 0 {
		return ""
	}
	return strings.Join(msgs, "\n") + "\n"
}

// writeEncrypted writes the ciphertext lines to w, wrapped as a.  A PEM
// block records which rotor table encrypted the messages.
func writeEncrypted(w io.Writer, msgs []string, table *rotorfile.Table, a armor) error {
	var src io.Reader = strings.NewReader(joinLines(msgs))
	if a.compress {
		src = flate.ToFlate(src)
	}
	var err error
	switch {
	case a.pem:
		var blck pem.Block
		blck.Type = pemType
		blck.Headers = make(map[string]string)
		blck.Headers["RotorSet"] = table.ID
		blck.Headers["Fingerprint"] = table.Fingerprint()
		blck.Headers["Compression"] = fmt.Sprintf("%v", a.compress)
		blck.Headers["ApiLevel"] = strconv.Itoa(enigmaApiLevel)
		_, err = io.Copy(w, pem.ToPem(src, blck))
	case a.ascii85:
		_, err = io.Copy(w, lines.SplitToLines(ascii85.ToASCII85(src)))
	default:
		_, err = io.Copy(w, src)
	}
	return err
}

// readEncrypted unwraps ciphertext read from bRdr.  PEM input is detected
// from its leading dashes; its headers override a.compress and are
// checked against table.
func readEncrypted(bRdr *bufio.Reader, table *rotorfile.Table, a armor) ([]string, error) {
	var rdr io.Reader = bRdr
	b, err := bRdr.Peek(5)
	if err == nil && string(b) == "-----" {
		pRdr, blck := pem.FromPem(bRdr)
		if err := verifyHeaders(blck.Headers, table); err != nil {
			return nil, err
		}
		cmpr, ok := blck.Headers["Compression"]
		if ok {
			a.compress = cmpr == "true"
		}
		rdr = pRdr
	} else if a.ascii85 {
		rdr = ascii85.FromASCII85(lines.CombineLines(bRdr))
	} else if a.compress {
		return nil, errCompressedPlain
	}
	if a.compress {
		rdr = flate.FromFlate(rdr)
	}
	return readMessages(rdr)
}

// outputOpener opens the destination for transformed messages.
type outputOpener func() (io.WriteCloser, error)

// writeOutput opens the destination and hands it to write.  Callers open
// it only after every message has been transformed, so a failure leaves an
// existing output file untouched.
func writeOutput(open outputOpener, write func(io.Writer) error) error {
	w, err := open()
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// encryptTo encrypts msgs and writes them, wrapped as a, to the output
// returned by open.
func encryptTo(msgs []string, encrypt func(string) (string, error), table *rotorfile.Table, a armor, open outputOpener) error {
	encrypted, err := transformLines(msgs, encrypt)
	if err != nil {
		return err
	}
	return writeOutput(open, func(w io.Writer) error {
		return writeEncrypted(w, encrypted, table, a)
	})
}

// decryptTo unwraps and decrypts the ciphertext in bRdr and writes the
// plaintext to the output returned by open.
func decryptTo(bRdr *bufio.Reader, decrypt func(string) (string, error), table *rotorfile.Table, a armor, open outputOpener) error {
	msgs, err := readEncrypted(bRdr, table, a)
	if err != nil {
		return err
	}
	decrypted, err := transformLines(msgs, decrypt)
	if err != nil {
		return err
	}
	return writeOutput(open, func(w io.Writer) error {
		_, err := io.WriteString(w, joinLines(decrypted))
		return err
	})
}

// mismatchError is returned when a PEM block was written by a different
// API level or rotor table.
type mismatchError struct {
	msg string
}

func (e *mismatchError) Error() string {
	return e.msg
}

func verifyHeaders(headers map[string]string, table *rotorfile.Table) error {
	fal, exists := headers["ApiLevel"]
	if !exists {
		fal = "-1"
	}
	fileApiLevel, _ := strconv.Atoi(fal)
	if fileApiLevel != enigmaApiLevel {
		return &mismatchError{fmt.Sprintf("API Level mismatch. FileApiLevel: %d, EnigmaApiLevel: %d", fileApiLevel, enigmaApiLevel)}
	}
	if fp, ok := headers["Fingerprint"]; ok && fp != table.Fingerprint() {
		return &mismatchError{fmt.Sprintf("rotor table mismatch. Message rotor table: %s (%s), current rotor table: %s (%s)",
			headers["RotorSet"], fp, table.ID, table.Fingerprint())}
	}
	return nil
}
