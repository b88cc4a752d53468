package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/bgallie/enigmacifra/cryptors"
	"github.com/bgallie/enigmacifra/engine"
	"github.com/bgallie/enigmacifra/rotorfile"
)

func testMachine(t *testing.T, table *rotorfile.Table) *engine.EnigmaEngine {
	t.Helper()
	base, err := table.Stack()
	if err != nil {
		t.Fatalf("Stack failed: %v", err)
	}
	pin, err := cryptors.ParsePIN("31415926")
	if err != nil {
		t.Fatalf("ParsePIN failed: %v", err)
	}
	var machine engine.EnigmaEngine
	if err := machine.Init(pin, base); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return &machine
}

func TestReadLine(t *testing.T) {
	rdr := bufio.NewReader(strings.NewReader("first\r\nsecond"))
	for _, want := range []string{"first", "second"} {
		got, err := readLine(rdr)
		if err != nil || got != want {
			t.Errorf("readLine = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := readLine(rdr); err == nil {
		t.Error("expected an error at end of input")
	}
}

func TestTransformLines(t *testing.T) {
	machine := testMachine(t, rotorfile.Default())
	enc, err := transformLines([]string{"tattoo", "Hi!", ""}, machine.Encrypt)
	if err != nil {
		t.Fatalf("transformLines failed: %v", err)
	}
	// every line is a separate message keyed from the PIN
	if enc[0] != "'j0G(*" || enc[1] != "W]+" || enc[2] != "" {
		t.Errorf("unexpected ciphertext %q", enc)
	}

	got, err := transformLines([]string{"fine", "not fine"}, machine.Encrypt)
	if !errors.Is(err, cryptors.ErrLookup) {
		t.Errorf("expected ErrLookup, got %v", err)
	}
	if got != nil {
		t.Errorf("partial output %q returned", got)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the line", err)
	}
}

func TestPlainRoundTrip(t *testing.T) {
	table := rotorfile.Default()
	machine := testMachine(t, table)
	msgs := []string{"tattoo", "Hello,World!", "{[(<>)]}"}
	enc, err := transformLines(msgs, machine.Encrypt)
	if err != nil {
		t.Fatalf("transformLines failed: %v", err)
	}
	var buf bytes.Buffer
	if err := writeEncrypted(&buf, enc, table, armor{}); err != nil {
		t.Fatalf("writeEncrypted failed: %v", err)
	}
	if buf.String() != strings.Join(enc, "\n")+"\n" {
		t.Errorf("plain output = %q", buf.String())
	}

	read, err := readEncrypted(bufio.NewReader(&buf), table, armor{})
	if err != nil {
		t.Fatalf("readEncrypted failed: %v", err)
	}
	dec, err := transformLines(read, machine.Decrypt)
	if err != nil {
		t.Fatalf("transformLines failed: %v", err)
	}
	if strings.Join(dec, "|") != strings.Join(msgs, "|") {
		t.Errorf("round trip gave %q, want %q", dec, msgs)
	}
}

func TestWriteEncrypted_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeEncrypted(&buf, nil, rotorfile.Default(), armor{}); err != nil {
		t.Fatalf("writeEncrypted failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q for no messages", buf.String())
	}
}

func TestVerifyHeaders(t *testing.T) {
	table := rotorfile.Default()
	level := strconv.Itoa(enigmaApiLevel)
	tests := []struct {
		name     string
		headers  map[string]string
		mismatch bool
	}{
		{"matching", map[string]string{"ApiLevel": level, "Fingerprint": table.Fingerprint(), "RotorSet": table.ID}, false},
		{"no fingerprint", map[string]string{"ApiLevel": level}, false},
		{"no api level", map[string]string{"Fingerprint": table.Fingerprint()}, true},
		{"other api level", map[string]string{"ApiLevel": "99", "Fingerprint": table.Fingerprint()}, true},
		{"other rotor table", map[string]string{"ApiLevel": level, "Fingerprint": "0123456789abcdef"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifyHeaders(tt.headers, table)
			var mismatch *mismatchError
			if tt.mismatch != errors.As(err, &mismatch) {
				t.Errorf("verifyHeaders() = %v, want mismatch %v", err, tt.mismatch)
			}
		})
	}
}

func TestArmorRoundTrip(t *testing.T) {
	table := rotorfile.Default()
	machine := testMachine(t, table)
	msgs := []string{"tattoo", "", "Hello,World!"}
	enc, err := transformLines(msgs, machine.Encrypt)
	if err != nil {
		t.Fatalf("transformLines failed: %v", err)
	}
	tests := []struct {
		name  string
		write armor
		read  armor
	}{
		{"plain", armor{}, armor{}},
		{"ascii85", armor{ascii85: true}, armor{ascii85: true}},
		{"ascii85 compressed", armor{ascii85: true, compress: true}, armor{ascii85: true, compress: true}},
		{"pem", armor{pem: true}, armor{}},
		{"pem compressed", armor{pem: true, compress: true}, armor{}},
		{"pem header disables compression", armor{pem: true}, armor{compress: true}},
		{"pem header enables compression", armor{pem: true, compress: true}, armor{compress: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeEncrypted(&buf, enc, table, tt.write); err != nil {
				t.Fatalf("writeEncrypted failed: %v", err)
			}
			if tt.write.pem && !strings.HasPrefix(buf.String(), "-----BEGIN "+pemType) {
				t.Errorf("output is not a PEM block: %q", buf.String())
			}
			if (tt.write.ascii85 || tt.write.pem) && strings.Contains(buf.String(), enc[2]) {
				t.Errorf("armored output %q carries the raw ciphertext", buf.String())
			}
			got, err := readEncrypted(bufio.NewReader(&buf), table, tt.read)
			if err != nil {
				t.Fatalf("readEncrypted failed: %v", err)
			}
			if strings.Join(got, "|") != strings.Join(enc, "|") || len(got) != len(enc) {
				t.Fatalf("readEncrypted = %q, want %q", got, enc)
			}
			dec, err := transformLines(got, testMachine(t, table).Decrypt)
			if err != nil {
				t.Fatalf("transformLines failed: %v", err)
			}
			if strings.Join(dec, "|") != strings.Join(msgs, "|") {
				t.Errorf("round trip gave %q, want %q", dec, msgs)
			}
		})
	}
}

func TestReadEncrypted_CompressedPlainInput(t *testing.T) {
	_, err := readEncrypted(bufio.NewReader(strings.NewReader("'j0G(*\n")), rotorfile.Default(), armor{compress: true})
	if !errors.Is(err, errCompressedPlain) {
		t.Errorf("expected %v, got %v", errCompressedPlain, err)
	}
}

// fileOpener returns an outputOpener for path and records whether it was
// called.
func fileOpener(path string, opened *bool) outputOpener {
	return func() (io.WriteCloser, error) {
		*opened = true
		return os.Create(path)
	}
}

func TestEncryptTo(t *testing.T) {
	table := rotorfile.Default()
	tests := []struct {
		name    string
		msgs    []string
		wantErr error
		want    string
	}{
		{"success", []string{"tattoo", "Hi!"}, nil, "'j0G(*\nW]+\n"},
		{"character outside the domain", []string{"fine", "Hello World"}, cryptors.ErrLookup, "existing data\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.txt")
			if err := os.WriteFile(path, []byte("existing data\n"), 0600); err != nil {
				t.Fatal(err)
			}
			var opened bool
			err := encryptTo(tt.msgs, testMachine(t, table).Encrypt, table, armor{}, fileOpener(path, &opened))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("encryptTo() = %v, want %v", err, tt.wantErr)
			}
			if opened != (tt.wantErr == nil) {
				t.Errorf("output opened = %v", opened)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("output file = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecryptTo(t *testing.T) {
	table := rotorfile.Default()
	var pemBuf bytes.Buffer
	if err := writeEncrypted(&pemBuf, []string{"'j0G(*"}, table, armor{pem: true}); err != nil {
		t.Fatalf("writeEncrypted failed: %v", err)
	}
	tampered := strings.Replace(pemBuf.String(), table.Fingerprint(), "0123456789abcdef", 1)

	tests := []struct {
		name     string
		input    string
		a        armor
		mismatch bool
		failed   bool
		want     string
	}{
		{"plain", "'j0G(*\nW]+\n", armor{}, false, false, "tattoo\nHi!\n"},
		{"pem", pemBuf.String(), armor{}, false, false, "tattoo\n"},
		{"rotor table mismatch", tampered, armor{}, true, true, "existing data\n"},
		{"character outside the domain", "'j0G(*\nW ]\n", armor{}, false, true, "existing data\n"},
		{"compressed plain input", "'j0G(*\n", armor{compress: true}, false, true, "existing data\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.txt")
			if err := os.WriteFile(path, []byte("existing data\n"), 0600); err != nil {
				t.Fatal(err)
			}
			var opened bool
			err := decryptTo(bufio.NewReader(strings.NewReader(tt.input)), testMachine(t, table).Decrypt, table, tt.a, fileOpener(path, &opened))
			if tt.failed != (err != nil) {
				t.Fatalf("decryptTo() = %v, want failure %v", err, tt.failed)
			}
			var mismatch *mismatchError
			if tt.mismatch != errors.As(err, &mismatch) {
				t.Errorf("decryptTo() = %v, want mismatch %v", err, tt.mismatch)
			}
			if opened == tt.failed {
				t.Errorf("output opened = %v", opened)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("output file = %q, want %q", got, tt.want)
			}
		})
	}
}
