package rotorfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bgallie/enigmacifra/cryptors"
	"github.com/bgallie/enigmacifra/cryptors/rotor"
)

const backupTimeLayout = "20060102150405"

// BackupName returns the name of the backup of path taken at now.
func BackupName(path string, now time.Time) string {
	return fmt.Sprintf("%s_%s.backup", filepath.Base(path), now.Format(backupTimeLayout))
}

// Backup copies the rotor store at path into backupDir and returns the
// backup's path.  An existing backup is never overwritten.
func Backup(path, backupDir string, now time.Time) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening rotor store: %w", cryptors.ErrIO, err)
	}
	defer src.Close()
	if err := os.MkdirAll(backupDir, 0700); err != nil {
		return "", fmt.Errorf("%w: %w", cryptors.ErrIO, err)
	}
	backupPath := filepath.Join(backupDir, BackupName(path, now))
	dst, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", fmt.Errorf("%w: creating backup: %w", cryptors.ErrIO, err)
	}
	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(backupPath)
		return "", fmt.Errorf("%w: copying rotor store: %w", cryptors.ErrIO, err)
	}
	if err = dst.Close(); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("%w: copying rotor store: %w", cryptors.ErrIO, err)
	}
	slog.Info("rotor store backed up", "store", path, "backup", backupPath)
	return backupPath, nil
}

// Regenerate replaces the rotor store at path with count new rotors.  An
// existing store is backed up first and is left untouched if the backup
// fails.  The returned backup path is empty when there was no store.
func Regenerate(path, backupDir string, count int, s rotor.Shuffler, now time.Time) (*Table, string, error) {
	rotors, err := rotor.Generate(count, s)
	if err != nil {
		return nil, "", err
	}
	var backupPath string
	switch _, err := os.Stat(path); {
	case err == nil:
		if backupPath, err = Backup(path, backupDir, now); err != nil {
			return nil, "", err
		}
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("no rotor store to back up", "store", path)
	default:
		return nil, "", fmt.Errorf("%w: %w", cryptors.ErrIO, err)
	}
	t := NewTable(rotors, now)
	if err := Save(path, t); err != nil {
		return nil, backupPath, err
	}
	slog.Info("rotor store written", "store", path, "id", t.ID, "rotors", len(t.Rotors))
	return t, backupPath, nil
}
