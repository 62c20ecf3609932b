package core

// Color is a foreground color for a screen cell, stored as its ANSI
// 256-color code. The zero value is the terminal default and renders
// without styling.
type Color uint8

// The palette covers what the game draws: safe and deadly segments, the
// finish ring, the ball, and the HUD.
const (
	ColorDefault      Color = 0
	ColorCyan         Color = 6
	ColorWhite        Color = 7
	ColorBrightRed    Color = 9
	ColorBrightGreen  Color = 10
	ColorBrightYellow Color = 11
	ColorGray         Color = 245
)
