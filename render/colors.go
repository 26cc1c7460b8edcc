package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbBorder      = tcell.NewRGBColor(80, 84, 110)
	RgbObstacle    = tcell.NewRGBColor(169, 177, 214)
	RgbHostile     = tcell.NewRGBColor(255, 80, 80)
	RgbDeadHostile = tcell.NewRGBColor(120, 40, 40)
	RgbPlayer      = tcell.NewRGBColor(0, 200, 200)
	RgbDeadPlayer  = tcell.NewRGBColor(255, 255, 0)
	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255)
	RgbVictory     = tcell.NewRGBColor(50, 255, 50)
	RgbLoss        = tcell.NewRGBColor(255, 120, 120)
)
