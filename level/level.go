package level

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lixenwraith/stomp/constant"
	"github.com/lixenwraith/stomp/engine"
)

//go:embed default.txt
var defaultLevel string

var (
	// ErrTooManyRows is returned when a map has more rows than the board is tall
	ErrTooManyRows = errors.New("level has more rows than the board")
	// ErrStartBlocked is returned when an obstacle covers the controlled start tile
	ErrStartBlocked = errors.New("obstacle on start tile")
)

// Layout is the obstacle set of a parsed level
type Layout struct {
	Obstacles []engine.Point
	Rows      int

	blocked map[engine.Point]struct{}
}

// Blocked reports whether p holds an obstacle
func (l *Layout) Blocked(p engine.Point) bool {
	_, ok := l.blocked[p]
	return ok
}

// CheckStart fails with ErrStartBlocked when start is covered
func (l *Layout) CheckStart(start engine.Point) error {
	if l.Blocked(start) {
		return fmt.Errorf("%w: (%d,%d)", ErrStartBlocked, start.X, start.Y)
	}
	return nil
}

// Parse reads a text map, one line per row from the top of the board down
// Column c maps to x = Left+c and row r to y = Top-r. Lines wider than the
// board are truncated, missing rows and columns are empty
func Parse(r io.Reader, b engine.Board) (*Layout, error) {
	l := &Layout{blocked: make(map[engine.Point]struct{})}
	width, height := b.Width(), b.Height()

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if row >= height {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return nil, fmt.Errorf("%w: row %d exceeds height %d", ErrTooManyRows, row+1, height)
		}

		runes := []rune(line)
		if len(runes) > width {
			runes = runes[:width]
		}
		for col, ch := range runes {
			if ch != constant.ObstacleMarker {
				continue
			}
			p := engine.Point{X: b.Left + col, Y: b.Top - row}
			l.Obstacles = append(l.Obstacles, p)
			l.blocked[p] = struct{}{}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read level: %w", err)
	}

	l.Rows = row
	return l, nil
}

// Load parses the level file at path
func Load(path string, b engine.Board) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level %s: %w", path, err)
	}
	defer f.Close()

	l, err := Parse(f, b)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return l, nil
}

// Default parses the embedded level
func Default(b engine.Board) (*Layout, error) {
	return Parse(strings.NewReader(defaultLevel), b)
}
