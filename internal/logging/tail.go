package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// pollInterval is how often a followed log is checked for new data.
const pollInterval = 100 * time.Millisecond

// TailLog copies the last n lines of the log at path to w (all of it when
// n <= 0). With follow it keeps copying appended data until ctx is done.
func TailLog(ctx context.Context, w io.Writer, path string, n int, follow bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if n > 0 {
		if err := tailSeek(file, n); err != nil {
			return fmt.Errorf("seek to tail position: %w", err)
		}
	}

	if _, err := io.Copy(w, file); err != nil {
		return err
	}
	if !follow {
		return nil
	}
	return tailFollow(ctx, w, file)
}

// tailSeek positions file at the start of its last n lines. A trailing
// newline does not count as an extra empty line.
func tailSeek(file *os.File, n int) error {
	const chunkSize = 4096

	stat, err := file.Stat()
	if err != nil {
		return err
	}
	size := stat.Size()

	var (
		offset = size
		seen   = 0
		buf    = make([]byte, chunkSize)
		first  = true
	)
	for offset > 0 {
		readLen := int64(chunkSize)
		if offset < readLen {
			readLen = offset
		}
		offset -= readLen
		chunk := buf[:readLen]
		if _, err := file.ReadAt(chunk, offset); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if first && len(chunk) > 0 && chunk[len(chunk)-1] == '\n' {
			chunk = chunk[:len(chunk)-1]
		}
		first = false
		for i := len(chunk) - 1; i >= 0; i-- {
			if chunk[i] != '\n' {
				continue
			}
			seen++
			if seen == n {
				_, err := file.Seek(offset+int64(i)+1, io.SeekStart)
				return err
			}
		}
	}
	_, err = file.Seek(0, io.SeekStart)
	return err
}

// tailFollow copies data appended to file until ctx is done.
func tailFollow(ctx context.Context, w io.Writer, file *os.File) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if _, err := io.Copy(w, file); err != nil {
			return err
		}
	}
}
