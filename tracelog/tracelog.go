// Package tracelog records search settle traces as zstd-compressed JSON lines.
package tracelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/statespace"
)

// Entry is one settled state.
type Entry struct {
	Profile string `json:"profile"`
	Seq     int    `json:"seq"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Heading string `json:"heading"`
	Run     int    `json:"run"`
	Cost    int64  `json:"cost"`
}

// Writer appends entries to <dir>/<prefix>.jsonl.zst. Safe for concurrent use.
type Writer struct {
	path string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
	seq map[string]int
	err error
}

// Create opens a fresh trace file, truncating any previous one.
func Create(dir, prefix string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.jsonl.zst", prefix))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Writer{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 128*1024),
		seq:  make(map[string]int),
	}, nil
}

// Path is the file being written.
func (w *Writer) Path() string { return w.path }

// Write appends one entry.
func (w *Writer) Write(e Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return os.ErrClosed
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}

	return w.w.WriteByte('\n')
}

// Hook returns a settle hook that numbers and writes every state of one
// profile. Write errors are kept and reported by Close.
func (w *Writer) Hook(profile string) dijkstra.PopFunc {
	return func(s statespace.State, dist int64) {
		w.mu.Lock()
		seq := w.seq[profile]
		w.seq[profile] = seq + 1
		w.mu.Unlock()

		if err := w.Write(Entry{
			Profile: profile,
			Seq:     seq,
			X:       s.X,
			Y:       s.Y,
			Heading: s.Heading.String(),
			Run:     s.Run,
			Cost:    dist,
		}); err != nil {
			w.mu.Lock()
			if w.err == nil {
				w.err = err
			}
			w.mu.Unlock()
		}
	}
}

// Close flushes and closes the file, returning the first write error if any.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return w.err
	}
	errs := []error{w.err, w.w.Flush(), w.enc.Close(), w.f.Close()}
	w.w, w.enc, w.f = nil, nil, nil
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// ReadAll decodes every entry of a trace file.
func ReadAll(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Entry
	jd := json.NewDecoder(dec)
	for {
		var e Entry
		if err := jd.Decode(&e); err == io.EOF {
			break
		} else if err != nil {
			return out, fmt.Errorf("tracelog: %s entry %d: %w", path, len(out), err)
		}
		out = append(out, e)
	}

	return out, nil
}
