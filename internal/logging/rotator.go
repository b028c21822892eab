package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	logDirPerm  = 0o750
	logFilePerm = 0o600
)

// FileSink appends log lines to a file and rotates it once it grows past
// maxSize. Rotated files are named <name>.1 through <name>.<maxBackups>,
// newest first.
type FileSink struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

// NewFileSink opens (or creates) name inside dir.
func NewFileSink(dir, name string, maxSizeMB, maxBackups int) (*FileSink, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	s := &FileSink{
		path:       filepath.Join(dir, name),
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the active log file path.
func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) open() error {
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	s.file = file
	s.size = info.Size()
	return nil
}

func (s *FileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		if err := s.open(); err != nil {
			return 0, err
		}
	}

	if s.maxSize > 0 && s.size > 0 && s.size+int64(len(p)) > s.maxSize {
		if err := s.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := s.file.Write(p)
	s.size += int64(n)
	return n, err
}

func (s *FileSink) rotate() error {
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	s.file = nil

	if s.maxBackups <= 0 {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to truncate log file: %w", err)
		}
		return s.open()
	}

	_ = os.Remove(s.backup(s.maxBackups))
	for i := s.maxBackups - 1; i >= 1; i-- {
		if err := os.Rename(s.backup(i), s.backup(i+1)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to shift log backup: %w", err)
		}
	}
	if err := os.Rename(s.path, s.backup(1)); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return s.open()
}

func (s *FileSink) backup(i int) string {
	return fmt.Sprintf("%s.%d", s.path, i)
}

// Close closes the active file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
