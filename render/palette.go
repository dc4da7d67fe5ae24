package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-pong/config"
)

// Palette holds resolved colors for every drawn element
type Palette struct {
	Foreground tcell.Color // Paddles, ball, scores
	Net        tcell.Color
	Background tcell.Color
	Flash      tcell.Color // Ball on the frame of a paddle hit
}

// ParseColor converts "#rgb" or "#rrggbb" into a 24-bit tcell color
func ParseColor(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, errors.Wrapf(err, "color %q", hex)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// NewPalette resolves configured hex colors
func NewPalette(c config.Colors) (Palette, error) {
	var p Palette
	fields := []struct {
		hex string
		dst *tcell.Color
	}{
		{c.Foreground, &p.Foreground},
		{c.Net, &p.Net},
		{c.Background, &p.Background},
		{c.Flash, &p.Flash},
	}
	for _, f := range fields {
		color, err := ParseColor(f.hex)
		if err != nil {
			return Palette{}, err
		}
		*f.dst = color
	}
	return p, nil
}
