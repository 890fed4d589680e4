package stores

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"weblog-analytics/internal/shared/filestorages"
)

const (
	readBufferBytes = 64 * 1024
	maxLineBytes    = 1 << 20
)

var (
	ErrSourceNotFound = errors.New("log source not found")
	ErrLineTooLong    = errors.New("log line too long")
)

// LineFunc receives one line of a log source. lineNumber is 1-based and counts blank lines.
// lineErr wraps ErrLineTooLong when the line was skipped for exceeding the size limit; line is
// empty then and reading continues unless fn returns an error.
// Returning an error stops the read.
type LineFunc func(lineNumber int, line string, lineErr error) error

// LogSourceStore reads log files kept in file storage. Sources are read whole on every pass;
// nothing is tailed or remembered between reads.
//
//go:generate mockgen -source=log_source_store.go -destination=./mocks/log_source_store_mock.go -package=mocks
type LogSourceStore interface {
	// ReadLines calls fn for every non-blank line of the source at key, in file order.
	ReadLines(ctx context.Context, key string, fn LineFunc) (*filestorages.FileInfo, error)
}

type logSourceStore struct {
	fileStorage filestorages.FileStorage
}

func NewLogSourceStore(fileStorage filestorages.FileStorage) LogSourceStore {
	return &logSourceStore{fileStorage: fileStorage}
}

func (s *logSourceStore) ReadLines(ctx context.Context, key string, fn LineFunc) (*filestorages.FileInfo, error) {
	info, err := s.fileStorage.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, key)
		}
		return nil, fmt.Errorf("failed to stat log source: %w", err)
	}

	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, key)
		}
		return nil, fmt.Errorf("failed to open log source: %w", err)
	}
	defer readCloser.Close()

	reader := bufio.NewReaderSize(readCloser, readBufferBytes)

	lineNumber := 0
	for {
		line, oversized, err := readLine(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read log source: %w", err)
		}
		lineNumber++
		if lineNumber%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if oversized {
			if err := fn(lineNumber, "", fmt.Errorf("%w: line %d exceeds %d bytes", ErrLineTooLong, lineNumber, maxLineBytes)); err != nil {
				return nil, err
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(lineNumber, line, nil); err != nil {
			return nil, err
		}
	}

	return info, nil
}

// readLine returns the next line without its terminator. A line longer than maxLineBytes is
// consumed to its end but not kept, and oversized is true. io.EOF is returned only when no
// bytes remain.
func readLine(reader *bufio.Reader) (string, bool, error) {
	var buf []byte
	oversized := false
	for {
		fragment, isPrefix, err := reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || oversized) {
				return string(buf), oversized, nil
			}
			return "", false, err
		}
		if !oversized {
			if len(buf)+len(fragment) > maxLineBytes {
				oversized = true
				buf = nil
			} else {
				buf = append(buf, fragment...)
			}
		}
		if !isPrefix {
			if oversized {
				return "", true, nil
			}
			return string(buf), false, nil
		}
	}
}
