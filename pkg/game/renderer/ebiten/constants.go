package ebiten

import "image/color"

// Color palette
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorGridLine   = color.RGBA{128, 128, 128, 255} // Gray cell borders
	colorHidden     = color.RGBA{200, 200, 210, 255} // Unexplored cells
	colorEmpty      = color.RGBA{255, 255, 255, 255}
	colorWall       = color.RGBA{0, 0, 0, 255}
	colorTreasure   = color.RGBA{255, 220, 0, 255}
	colorHint       = color.RGBA{0, 200, 0, 255}
	colorPlayer     = color.RGBA{0, 0, 255, 255}
)

// Layout
const (
	cellSize     = 30  // Pixels per grid cell
	panelHeight  = 110 // Status and message area under the map
	textLineStep = 16  // Debug font line height
	panelPadding = 8
)

const (
	keyRepeatInitialDelay = 500 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeat events (milliseconds)
)
