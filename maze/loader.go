package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tbelaire/maze-w25/core"
)

// LoadFromLines parses a plain-text layout
// Every line must have the same number of characters; ragged layouts are rejected
func LoadFromLines(lines []string) (*Maze, error) {
	if len(lines) == 0 {
		return nil, &FormatError{Reason: "empty layout"}
	}

	width := utf8.RuneCountInString(strings.TrimSuffix(lines[0], "\r"))
	if width == 0 {
		return nil, &FormatError{Line: 1, Reason: "empty first row"}
	}

	tiles := core.NewGrid(len(lines), width, Wall)
	for row, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if n := utf8.RuneCountInString(line); n != width {
			return nil, &FormatError{Line: row + 1, Reason: fmt.Sprintf("row has %d characters, want %d", n, width)}
		}

		col := 0
		for _, r := range line {
			t, ok := ParseTile(r)
			if !ok {
				return nil, &FormatError{Line: row + 1, Column: col + 1, Char: r, Reason: "bad maze character"}
			}
			tiles.Set(core.Position{Row: row, Col: col}, t)
			col++
		}
	}

	return New(tiles), nil
}

// Load reads a layout from r
// Trailing blank lines are ignored
func Load(r io.Reader) (*Maze, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read maze layout: %w", err)
	}

	for len(lines) > 0 && strings.TrimSuffix(lines[len(lines)-1], "\r") == "" {
		lines = lines[:len(lines)-1]
	}
	return LoadFromLines(lines)
}

// LoadFile reads a layout from the named file
func LoadFile(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// SaveFile writes the layout of m to the named file
func SaveFile(path string, m *Maze) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := m.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
