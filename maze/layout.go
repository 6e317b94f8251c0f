package maze

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
)

//go:embed layouts/*.lay
var layouts embed.FS

const (
	wallCell      = '%'
	foodCell      = '.'
	capsuleCell   = 'o'
	agentCell     = 'P'
	adversaryCell = 'G'
	emptyCell     = ' '
)

var ErrBadLayout = errors.New("bad layout")

type Position struct {
	X, Y int
}

// Layout is the static part of a game: walls, initial food and capsules, and
// where every agent starts.
type Layout struct {
	Name            string
	Width, Height   int
	walls           []bool // Indexed by y*Width + x
	food            []bool
	foodCount       int
	Capsules        []Position
	Start           Position
	AdversaryStarts []Position
}

// ParseLayout reads a layout drawn with '%' walls, '.' food, 'o' capsules,
// 'P' for the controlled agent and 'G' for each adversary.
func ParseLayout(name, text string) (*Layout, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout %s: %w: empty", name, ErrBadLayout)
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	l := &Layout{
		Name:   name,
		Width:  width,
		Height: len(rows),
		walls:  make([]bool, width*len(rows)),
		food:   make([]bool, width*len(rows)),
	}

	agents := 0
	for y, row := range rows {
		// Trailing spaces were trimmed, pad them back as open cells
		row += strings.Repeat(string(emptyCell), width-len(row))
		for x, cell := range row {
			p := Position{X: x, Y: y}
			switch cell {
			case wallCell:
				l.walls[l.index(p)] = true
			case foodCell:
				l.food[l.index(p)] = true
				l.foodCount++
			case capsuleCell:
				l.Capsules = append(l.Capsules, p)
			case agentCell:
				l.Start = p
				agents++
			case adversaryCell:
				l.AdversaryStarts = append(l.AdversaryStarts, p)
			case emptyCell:
			default:
				return nil, fmt.Errorf("layout %s: %w: unexpected cell %q at (%d, %d)", name, ErrBadLayout, cell, x, y)
			}
		}
	}

	if agents != 1 {
		return nil, fmt.Errorf("layout %s: %w: want exactly one controlled agent, found %d", name, ErrBadLayout, agents)
	}
	if len(l.AdversaryStarts) == 0 {
		return nil, fmt.Errorf("layout %s: %w: no adversaries", name, ErrBadLayout)
	}
	return l, nil
}

// LoadLayout returns one of the bundled layouts by name.
func LoadLayout(name string) (*Layout, error) {
	data, err := layouts.ReadFile(path.Join("layouts", name+".lay"))
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w: not found (known: %v)", name, ErrBadLayout, LayoutNames())
	}
	return ParseLayout(name, string(data))
}

// LayoutNames lists the bundled layouts.
func LayoutNames() []string {
	entries, err := layouts.ReadDir("layouts")
	if err != nil {
		panic(fmt.Sprintf("reading embedded layouts: %v", err))
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".lay"))
	}
	slices.Sort(names)
	return names
}

func (l *Layout) index(p Position) int {
	return p.Y*l.Width + p.X
}

func (l *Layout) inside(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < l.Width && p.Y < l.Height
}

// IsWall reports whether p is blocked. Cells outside the layout are walls.
func (l *Layout) IsWall(p Position) bool {
	return !l.inside(p) || l.walls[l.index(p)]
}
