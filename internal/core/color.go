package core

// Color is a foreground color role for a screen cell.
// The platform layer maps each role to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorApple
	ColorWall
	ColorHUD
	ColorOverlay
	ColorCrash
	ColorDim
)
