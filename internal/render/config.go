package render

import "image/color"

// Global render configuration for colors and logical canvas.
var (
	// Background clears every frame; Edge outlines the triangle showing the time.
	Background = color.RGBA{A: 0xFF}
	Edge       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// Default logical canvas size; scaled to the framebuffer.
	CanvasWidth  = 144
	CanvasHeight = 168
)
