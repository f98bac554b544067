package outfile

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

var (
	// ErrWrite reports a failure creating or replacing an output file.
	ErrWrite = errors.New("write failure")
	// ErrLocked reports that another process held the output lock until ctx ended.
	ErrLocked = errors.New("output file is locked by another process")
)

const lockRetryDelay = 50 * time.Millisecond

type options struct {
	lockDir string
}

// Option customizes Write.
type Option func(*options)

// WithLockDir keeps the advisory lock file in dir instead of next to the
// output. When dir cannot be created the lock falls back to the output's
// directory.
func WithLockDir(dir string) Option {
	return func(o *options) {
		o.lockDir = dir
	}
}

// LockPath returns the advisory lock file guarding writes to path. With an
// empty lockDir the lock sits next to path; otherwise it is named after the
// base name and a hash of the absolute path so distinct outputs with the
// same name do not share a lock.
func LockPath(lockDir, path string) string {
	if lockDir == "" {
		return path + ".lock"
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(lockDir, fmt.Sprintf("%s-%s.lock", filepath.Base(path), hex.EncodeToString(sum[:4])))
}

// Write replaces path with data. Other wordbag processes are excluded
// through an advisory lock, and the content is staged in a temp file in the
// same directory and renamed into place, so readers see either the old file
// or the complete new one.
func Write(ctx context.Context, path string, data []byte, perm os.FileMode, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %q: %w", ErrWrite, dir, err)
	}

	lockDir := o.lockDir
	if lockDir != "" {
		if err := os.MkdirAll(lockDir, 0o755); err != nil {
			lockDir = ""
		}
	}

	lock := flock.New(LockPath(lockDir, path))
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %s: %w", ErrLocked, path, ctxErr)
		}
		return fmt.Errorf("%w: lock %s: %w", ErrWrite, path, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	return writeAtomic(path, data, perm)
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrWrite, err)
	}
	tmpName := tmp.Name()
	fail := func(step string, err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s %s: %w", ErrWrite, step, path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %w", ErrWrite, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: rename into %s: %w", ErrWrite, path, err)
	}
	return nil
}
