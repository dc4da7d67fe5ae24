package render

import "github.com/gdamore/tcell/v2"

// Surface is a drawing target in logical playfield units
// Implementations map logical coordinates to their own resolution
type Surface interface {
	// Size returns the logical dimensions
	Size() (width, height float64)
	// Clear paints the whole surface with bg
	Clear(bg tcell.Color)
	// FillRect paints the axis-aligned rectangle with top-left (x, y)
	FillRect(x, y, w, h float64, color tcell.Color)
	// FillCircle paints a disc centered on (cx, cy)
	FillCircle(cx, cy, r float64, color tcell.Color)
	// DrawText draws text horizontally centered on cx at vertical position y
	DrawText(text string, cx, y float64, color tcell.Color)
	// Show presents the frame
	Show()
}
