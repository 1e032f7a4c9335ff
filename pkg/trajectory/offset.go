package trajectory

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/tlindem/wellpath/pkg/survey"
)

// offsetPalette cycles through visually distinct muted colors for offset
// wells. The primary well keeps the depth-cued default rendering.
var offsetPalette = []color.RGBA{
	{R: 200, G: 140, B: 40, A: 255},  // amber
	{R: 90, G: 170, B: 90, A: 255},   // green
	{R: 180, G: 90, B: 180, A: 255},  // purple
	{R: 90, G: 170, B: 190, A: 255},  // teal
	{R: 200, G: 90, B: 90, A: 255},   // red
	{R: 150, G: 150, B: 150, A: 255}, // gray
}

// DefaultOffsetColor returns the palette color for the i-th offset well
func DefaultOffsetColor(i int) color.RGBA {
	return offsetPalette[i%len(offsetPalette)]
}

// LoadOffsetWell reads a survey file and integrates it into a reference
// trajectory. The well is named after the file.
func LoadOffsetWell(filename string, c color.RGBA) (OffsetWell, error) {
	stations, err := survey.Load(filename)
	if err != nil {
		return OffsetWell{}, fmt.Errorf("offset well %s: %w", filename, err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return OffsetWell{
		Name:   name,
		Color:  c,
		Points: Integrate(stations),
	}, nil
}
