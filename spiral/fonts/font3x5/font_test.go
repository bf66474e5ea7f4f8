package font3x5

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/tinyfont"
)

type pixelSet struct {
	w, h int16
	px   map[[2]int16]color.RGBA
}

func newPixelSet(w, h int16) *pixelSet {
	return &pixelSet{w: w, h: h, px: make(map[[2]int16]color.RGBA)}
}

func (p *pixelSet) Size() (x, y int16)                { return p.w, p.h }
func (p *pixelSet) SetPixel(x, y int16, c color.RGBA) { p.px[[2]int16{x, y}] = c }
func (p *pixelSet) Display() error                    { return nil }

func TestGlyphOne(t *testing.T) {
	d := newPixelSet(16, 16)
	c := color.RGBA{R: 0xFF, A: 0xFF}
	tinyfont.DrawChar(d, Font, 0, 4, '1', c)

	want := [][2]int16{
		{1, 0},
		{0, 1}, {1, 1},
		{1, 2},
		{1, 3},
		{0, 4}, {1, 4}, {2, 4},
	}
	require.Len(t, d.px, len(want))
	for _, p := range want {
		assert.Equal(t, c, d.px[p], "pixel %v", p)
	}
}

func TestLowercaseMapsToUppercase(t *testing.T) {
	upper := newPixelSet(16, 16)
	lower := newPixelSet(16, 16)
	tinyfont.DrawChar(upper, Font, 0, 4, 'W', color.RGBA{A: 0xFF})
	tinyfont.DrawChar(lower, Font, 0, 4, 'w', color.RGBA{A: 0xFF})
	assert.Equal(t, upper.px, lower.px)
	assert.True(t, Covered('w'))
}

func TestUnknownRuneDrawsQuestionMark(t *testing.T) {
	unknown := newPixelSet(16, 16)
	question := newPixelSet(16, 16)
	tinyfont.DrawChar(unknown, Font, 0, 4, '€', color.RGBA{A: 0xFF})
	tinyfont.DrawChar(question, Font, 0, 4, '?', color.RGBA{A: 0xFF})
	assert.NotEmpty(t, unknown.px)
	assert.Equal(t, question.px, unknown.px)
	assert.False(t, Covered('€'))
}

func TestLineWidth(t *testing.T) {
	_, w := tinyfont.LineWidth(Font, "0")
	assert.Equal(t, uint32(xAdvance), w)
	_, w = tinyfont.LineWidth(Font, "TICK 12")
	assert.Equal(t, uint32(7*xAdvance), w)
	assert.Equal(t, uint8(yAdvance), Font.GetYAdvance())
}

func TestHUDCharsetCovered(t *testing.T) {
	for _, r := range "tick: 0123456789 wings 40/40 paused outline wireframe (q/esc) =?" {
		assert.True(t, Covered(r), "rune %q", r)
	}
}
