package storage

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// Lock manages a PID lock file so two sessions cannot clobber the same
// data file. Stale locks from dead processes are automatically cleaned up.
type Lock struct {
	path string
}

// NewLock creates a lock manager for the given lock file path.
func NewLock(path string) *Lock {
	return &Lock{path: path}
}

// Acquire takes the lock for this process. It fails when another live
// process holds it; a lock left behind by a dead process is removed and
// the creation retried once.
func (l *Lock) Acquire() error {
	for attempt := 0; ; attempt++ {
		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			_, writeErr := fmt.Fprintf(f, "%d", os.Getpid())
			f.Close()
			if writeErr != nil {
				os.Remove(l.path)
				return fmt.Errorf("failed to write lock file: %w", writeErr)
			}
			return nil
		}
		if !os.IsExist(err) {
			return fmt.Errorf("failed to create lock file: %w", err)
		}
		if attempt > 0 {
			return fmt.Errorf("lock acquired by another process during retry")
		}

		if pid, ok := l.holder(); ok && processExists(pid) {
			return fmt.Errorf("another session is using this task file (PID %d)", pid)
		}

		// Stale or unreadable lock: drop it and go around once more.
		if removeErr := os.Remove(l.path); removeErr != nil && !os.IsNotExist(removeErr) {
			return fmt.Errorf("failed to remove stale lock file: %w", removeErr)
		}
	}
}

// holder reports the PID recorded in the lock file. ok is false when the
// file is unreadable or does not contain a number.
func (l *Lock) holder() (pid int, ok bool) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false
	}
	pid, err = strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	return pid, true
}

// Release removes the lock file.
// Returns nil if the lock file doesn't exist (idempotent).
func (l *Lock) Release() error {
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// processExists checks if a process with the given PID is running.
// Uses kill with signal 0, which checks for process existence without
// sending a signal.
func processExists(pid int) bool {
	if pid == os.Getpid() {
		return true
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = process.Signal(syscall.Signal(0))
	return err == nil
}
