// Package rotorfile loads, saves and regenerates the rotor table that keys
// every enigmacifra session.
package rotorfile

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/bgallie/enigmacifra/cryptors"
	"github.com/bgallie/enigmacifra/cryptors/rotor"
	"github.com/bgallie/enigmacifra/cryptors/stack"
)

// Table is a versioned set of base rotors.  It is read-only once loaded;
// regenerating produces a new Table.
type Table struct {
	ID      string
	Created time.Time
	Rotors  []*rotor.Rotor
}

type tableFile struct {
	ID      string        `yaml:"id"`
	Created time.Time     `yaml:"created"`
	Rotors  []rotorRecord `yaml:"rotors"`
}

type rotorRecord struct {
	Keys   string `yaml:"keys"`
	Values string `yaml:"values"`
}

// NewTable wraps freshly generated rotors in a table with a new ID.
func NewTable(rotors []*rotor.Rotor, created time.Time) *Table {
	return &Table{
		ID:      uuid.NewString(),
		Created: created.UTC().Truncate(time.Second),
		Rotors:  rotors,
	}
}

// Default returns the rotor table built into enigmacifra.
func Default() *Table {
	t := &Table{ID: defaultID, Created: defaultCreated}
	for i, kv := range defaultRotors {
		r, err := rotor.New([]byte(kv[0]), []byte(kv[1]))
		if err != nil {
			panic(fmt.Sprintf("built-in rotor %d: %v", i, err))
		}
		t.Rotors = append(t.Rotors, r)
	}
	return t
}

// Stack returns the table's rotors as a base stack.
func (t *Table) Stack() (*stack.Stack, error) {
	return stack.New(t.Rotors...)
}

// Fingerprint identifies the rotor content, so ciphertext can be matched
// with the table that produced it.
func (t *Table) Fingerprint() string {
	h := sha256.New()
	for _, r := range t.Rotors {
		h.Write(r.Keys())
		h.Write(r.Values())
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Load reads a rotor table written by Save.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading rotor store: %w", cryptors.ErrIO, err)
	}
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("%w: parsing rotor store %s: %v", cryptors.ErrInvalidArgument, path, err)
	}
	if len(tf.Rotors) == 0 {
		return nil, fmt.Errorf("%w: rotor store %s holds no rotors", cryptors.ErrInvalidArgument, path)
	}
	t := &Table{ID: tf.ID, Created: tf.Created}
	for i, rec := range tf.Rotors {
		r, err := rotor.New([]byte(rec.Keys), []byte(rec.Values))
		if err != nil {
			return nil, fmt.Errorf("rotor store %s, rotor %d: %w", path, i, err)
		}
		t.Rotors = append(t.Rotors, r)
	}
	return t, nil
}

// Save writes t to path, replacing any existing store only once the new
// content is completely on disk.
func Save(path string, t *Table) error {
	tf := tableFile{ID: t.ID, Created: t.Created}
	for _, r := range t.Rotors {
		tf.Rotors = append(tf.Rotors, rotorRecord{Keys: string(r.Keys()), Values: string(r.Values())})
	}
	data, err := yaml.Marshal(&tf)
	if err != nil {
		return fmt.Errorf("encoding rotor store: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: %w", cryptors.ErrIO, err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", cryptors.ErrIO, err)
	}
	defer os.Remove(f.Name())
	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing rotor store: %w", cryptors.ErrIO, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: writing rotor store: %w", cryptors.ErrIO, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("%w: replacing rotor store: %w", cryptors.ErrIO, err)
	}
	return nil
}
