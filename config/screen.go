package config

// Screen layout configuration
const (
	// Canvas the prototile is centered on, in world units
	CanvasWidth  = 700
	CanvasHeight = 450

	// Window dimensions in pixels
	WindowWidth  = 1024
	WindowHeight = 768

	// World to screen transform applied when drawing
	ViewOffsetX = 100
	ViewOffsetY = 200
	ViewScale   = 0.5

	// Margin kept around the tiling when the view is fitted, in pixels
	FitMargin = 16
)

// GetCanvasSize returns the canvas dimensions the tiling is generated for
func GetCanvasSize() (width, height float64) {
	return CanvasWidth, CanvasHeight
}

// GetWindowSize returns the recommended window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
