package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
)

// Parse reads a grid of ASCII digits, one row per line.
//
// Behavior:
//  1. '\r' line endings are stripped.
//  2. Blank lines after the last row are ignored; a blank line before or
//     between rows is ErrMalformedGrid.
//  3. A non-digit character yields *ParseError, which matches both ErrParse
//     and ErrMalformedGrid. Columns count runes, not bytes.
//  4. Rows of unequal length yield ErrNonRectangular.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}

	return ParseLines(lines)
}

// ParseLines is Parse over already-split lines.
func ParseLines(lines []string) (*Grid, error) {
	// drop trailing blank lines only
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	// Width and columns count runes, so a multi-byte character is reported
	// as itself rather than as its first byte.
	w := utf8.RuneCountInString(lines[0])
	values := make([][]int, len(lines))
	for y, line := range lines {
		if line == "" {
			return nil, fmt.Errorf("%w: blank line %d inside grid", ErrMalformedGrid, y+1)
		}
		cells := []rune(line)
		row := make([]int, len(cells))
		for x, c := range cells {
			if c < '0' || c > '9' {
				return nil, &ParseError{Line: y + 1, Column: x + 1, Char: c}
			}
			row[x] = int(c - '0')
		}
		if len(row) != w {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, y+1, len(row), w)
		}
		values[y] = row
	}

	return New(values)
}

// Load parses the grid stored at path. Files ending in ".zst" are
// decompressed with zstd on the fly.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("grid: zstd %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	g, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
