// Package mazefile reads maze text into lines and writes rendered mazes back
// to disk.
package mazefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/render"
)

var (
	// ErrOpen indicates the input file could not be opened.
	ErrOpen = errors.New("mazefile: cannot open input file")
	// ErrRead indicates the input could not be read to the end.
	ErrRead = errors.New("mazefile: cannot read input")
	// ErrCreate indicates the output file could not be created.
	ErrCreate = errors.New("mazefile: cannot create output file")
	// ErrWrite indicates the output could not be written or closed.
	ErrWrite = errors.New("mazefile: cannot write output file")
)

// ReadLines splits r into lines of any length. "\n" and a preceding "\r" are
// removed; a last line without terminator is kept, an empty tail is not.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRead, err)
		}
	}
}

// Load reads the file at path into lines.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()

	return ReadLines(f)
}

// Save renders g into a new file at path, replacing any existing one.
func Save(path string, g *grid.Grid) error {
	return create(path, func(w io.Writer) error { return render.Write(w, g) })
}

// SavePNG writes the image rendering of g to path.
func SavePNG(path string, g *grid.Grid, scale int) error {
	return create(path, func(w io.Writer) error { return render.PNG(w, g, scale) })
}

func create(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreate, err)
	}
	if err := fill(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
