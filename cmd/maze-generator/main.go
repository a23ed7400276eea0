package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tbelaire/maze-w25/core"
	"github.com/tbelaire/maze-w25/maze"
	"github.com/tbelaire/maze-w25/navigation"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== HUNT-AND-KILL MAZE GENERATOR ===")

		h, ok := getInt(reader, "Height in cells (default 10): ", 10)
		if !ok {
			return
		}
		w, ok := getInt(reader, "Width in cells (default 20): ", 20)
		if !ok {
			return
		}
		seed, ok := getInt64(reader, "Seed [0 = clock] (default 0): ", 0)
		if !ok {
			return
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		rng := rand.New(rand.NewSource(seed))

		fmt.Println("\nGenerating...")
		startT := time.Now()
		m, err := maze.Generate(maze.GenerateConfig{Height: h, Width: w, Rand: rng})
		dur := time.Since(startT)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("Done in %v (seed %d)\n", dur, seed)
		fmt.Printf("Grid Dimensions: %dx%d\n", m.Width(), m.Height())

		// Solve from the cell farthest from the exit corner
		start := core.Position{Row: m.Height() - 2, Col: m.Width() - 2}
		path := navigation.Pathfind(m, start)
		if path != nil {
			fmt.Printf("Solution Path Length: %d steps\n", len(path))
		} else {
			fmt.Println("Status: Unsolvable (Isolated Start)")
		}

		draw(os.Stdout, m, start, path)

		name, ok := prompt(reader, "\nSave to file [blank to skip]: ")
		if !ok {
			return
		}
		if name != "" {
			if err := maze.SaveFile(name, m); err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Printf("Saved %s\n", name)
			}
		}

		cont, ok := prompt(reader, "\nGenerate another? [Y/n]: ")
		if !ok || strings.ToLower(cont) == "n" {
			break
		}
	}
}

func draw(w io.Writer, m *maze.Maze, start core.Position, path []core.Position) {
	pathMap := make(map[core.Position]bool, len(path))
	for _, p := range path {
		pathMap[p] = true
	}

	var sb strings.Builder
	for r := range m.Height() {
		for c := range m.Width() {
			p := core.Position{Row: r, Col: c}
			tile := m.TileAt(p)

			switch {
			case p == start:
				sb.WriteRune('S')
			case tile == maze.Exit:
				sb.WriteRune('E')
			case tile == maze.Wall:
				sb.WriteRune('█')
			case pathMap[p]:
				sb.WriteRune('•')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}

// --- Input Helpers ---

// prompt reads one trimmed line; false once stdin is exhausted
func prompt(r *bufio.Reader, text string) (string, bool) {
	fmt.Print(text)
	s, err := r.ReadString('\n')
	if err != nil && s == "" {
		fmt.Println()
		return "", false
	}
	return strings.TrimSpace(s), true
}

func getInt(r *bufio.Reader, text string, def int) (int, bool) {
	s, ok := prompt(r, text)
	if !ok || s == "" {
		return def, ok
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def, true
	}
	return v, true
}

func getInt64(r *bufio.Reader, text string, def int64) (int64, bool) {
	s, ok := prompt(r, text)
	if !ok || s == "" {
		return def, ok
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def, true
	}
	return v, true
}
