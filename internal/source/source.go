// Package source reads the text handed to the analysis pipeline.
// All failures of an analysis run originate here.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"
)

var (
	// ErrFileNotFound is returned when the path does not resolve to an
	// existing file.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileRead is returned for I/O failures other than a missing file,
	// including permission errors and directories.
	ErrFileRead = errors.New("error reading file")

	// ErrDecode is returned when the content is not valid UTF-8.
	// It matches ErrFileRead under errors.Is.
	ErrDecode = fmt.Errorf("%w: content is not valid UTF-8", ErrFileRead)
)

// DefaultProgressThreshold is the file size above which a progress bar is
// shown when progress reporting is enabled.
const DefaultProgressThreshold = 8 << 20

// Options controls ReadFile.
type Options struct {
	// Progress enables a progress bar for large files. The bar is only drawn
	// when ProgressOut is a terminal.
	Progress bool

	// ProgressThreshold is the minimum size in bytes for the bar.
	// Zero means DefaultProgressThreshold.
	ProgressThreshold int64

	// ProgressOut receives the bar. Nil means os.Stderr.
	ProgressOut io.Writer

	// Logger receives debug output. Nil disables logging.
	Logger *slog.Logger
}

// ReadFile returns the whole content of the file at path as text.
func ReadFile(path string, opts Options) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrFileNotFound)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrFileRead, path)
	}

	var r io.Reader = f
	if bar := opts.progressBar(info.Size()); bar != nil {
		r = bar.NewProxyReader(f)
		defer bar.Finish()
	}

	var buf bytes.Buffer
	if info.Size() > 0 {
		buf.Grow(int(info.Size()))
	}
	if _, err := buf.ReadFrom(r); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	if !utf8.Valid(buf.Bytes()) {
		return "", fmt.Errorf("%w: %s", ErrDecode, path)
	}

	if opts.Logger != nil {
		opts.Logger.Debug("read file", "path", path, "bytes", buf.Len())
	}
	return buf.String(), nil
}

// progressBar returns a started bar for a file of the given size, or nil
// when no bar should be drawn.
func (o Options) progressBar(size int64) *pb.ProgressBar {
	if !o.Progress {
		return nil
	}
	threshold := o.ProgressThreshold
	if threshold <= 0 {
		threshold = DefaultProgressThreshold
	}
	if size < threshold {
		return nil
	}

	out := o.ProgressOut
	if out == nil {
		out = os.Stderr
	}
	if !isTerminal(out) {
		return nil
	}

	bar := pb.New64(size).
		Set(pb.Bytes, true).
		SetTemplate(pb.Full).
		SetWriter(out)
	return bar.Start()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
