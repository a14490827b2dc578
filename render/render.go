// Package render turns a finished (or in-progress) maze into text.
//
// Rendering only reads through grid.View; decorations such as corner pillars
// and the outer frame are applied to the output, never to the grid.
//
//	#########
//	#.....#.#      ASCII(v, WithBorder())
//	#.###.#.#
//	...
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/labyrinth/grid"
)

// Default glyphs.
const (
	WallGlyph    = '#'
	PassageGlyph = '.'
	PillarGlyph  = '@'
)

// Theme colours each kind of position in Styled output.
type Theme struct {
	Wall    lipgloss.Style
	Passage lipgloss.Style
	Pillar  lipgloss.Style
}

// DefaultTheme returns muted grey walls, blank passages and amber pillars.
func DefaultTheme() Theme {
	return Theme{
		Wall: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Passage: lipgloss.NewStyle(),
		Pillar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")), // Muted yellow
	}
}

// Option tweaks one rendering call.
type Option func(*options)

type options struct {
	pillars bool
	border  bool
	wall    rune
	passage rune
	pillar  rune
}

// WithPillars draws odd-odd corner positions that are still wall as pillars.
func WithPillars() Option {
	return func(o *options) { o.pillars = true }
}

// WithBorder surrounds the output with a one-glyph wall frame.
func WithBorder() Option {
	return func(o *options) { o.border = true }
}

// WithGlyphs replaces the default '#', '.', '@' glyphs.
func WithGlyphs(wall, passage, pillar rune) Option {
	return func(o *options) {
		o.wall, o.passage, o.pillar = wall, passage, pillar
	}
}

func newOptions(opts []Option) options {
	o := options{wall: WallGlyph, passage: PassageGlyph, pillar: PillarGlyph}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Classify returns the state a renderer should draw at p: the stored state,
// except that uncarved odd-odd corners become grid.Pillar when pillars is set.
// Positions outside v are Wall.
func Classify(v grid.View, p grid.Point, pillars bool) grid.State {
	if !v.InBounds(p) {
		return grid.Wall
	}
	st := v.At(p)
	if pillars && st == grid.Wall && p.IsPillar() {
		return grid.Pillar
	}
	return st
}

// ASCII renders v as newline-terminated rows of glyphs.
// Complexity: O(rows×cols).
func ASCII(v grid.View, opts ...Option) string {
	o := newOptions(opts)
	var sb strings.Builder
	o.each(v, func(st grid.State) {
		sb.WriteRune(o.glyph(st))
	}, func() {
		sb.WriteByte('\n')
	})
	return sb.String()
}

// Write renders v to w in ASCII form.
func Write(w io.Writer, v grid.View, opts ...Option) error {
	_, err := io.WriteString(w, ASCII(v, opts...))
	return err
}

// Styled renders v like ASCII but passes each glyph through the matching
// theme style. Lines keep the same visible width as ASCII output.
func Styled(v grid.View, theme Theme, opts ...Option) string {
	o := newOptions(opts)
	var sb strings.Builder
	o.each(v, func(st grid.State) {
		g := string(o.glyph(st))
		switch st {
		case grid.Passage:
			sb.WriteString(theme.Passage.Render(g))
		case grid.Pillar:
			sb.WriteString(theme.Pillar.Render(g))
		default:
			sb.WriteString(theme.Wall.Render(g))
		}
	}, func() {
		sb.WriteByte('\n')
	})
	return sb.String()
}

func (o options) glyph(st grid.State) rune {
	switch st {
	case grid.Passage:
		return o.passage
	case grid.Pillar:
		return o.pillar
	default:
		return o.wall
	}
}

// each walks the output rows, including the frame when enabled.
func (o options) each(v grid.View, cell func(grid.State), eol func()) {
	s := v.Shape()
	lo, hiR, hiC := 0, s.Rows, s.Cols
	if o.border {
		lo, hiR, hiC = -1, s.Rows+1, s.Cols+1
	}
	for r := lo; r < hiR; r++ {
		for c := lo; c < hiC; c++ {
			cell(Classify(v, grid.Point{Row: r, Col: c}, o.pillars))
		}
		eol()
	}
}
