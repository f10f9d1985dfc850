package store

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Backup starts a file-level copy of the database into dir and returns
// the destination path immediately, without waiting for the copy. The
// returned channel receives the copy's outcome exactly once; production
// callers ignore it and the result is logged either way. Nanosecond
// timestamps keep two backups started in the same second distinct.
func (s *Store) Backup(dir string) (string, <-chan error, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	stamp := strings.NewReplacer(":", "-", ".", "-").
		Replace(time.Now().Format(time.RFC3339Nano))
	dest := filepath.Join(dir, fmt.Sprintf("backup-%s.db", stamp))

	done := make(chan error, 1)

	go func() {
		err := copyFile(s.path, dest)
		if err != nil {
			log.Printf("Database backup to %s failed: %v", dest, err)
		} else {
			log.Printf("Database backup written to %s", dest)
		}
		done <- err
		close(done)
	}()

	return dest, done, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
