package game

type RGB struct {
	R, G, B uint8
}

// Palette holds the fixed board colors.
var Palette = struct {
	Background RGB
	BoardDark  RGB
	BoardLight RGB
	Wall       RGB
	Apple      RGB
	Snake      RGB
	SnakeHead  RGB
	Crashed    RGB
	HUD        RGB
	Accent     RGB
	Dim        RGB
}{
	Background: RGB{16, 18, 24},
	BoardDark:  RGB{26, 30, 38},
	BoardLight: RGB{31, 36, 45},
	Wall:       RGB{90, 96, 108},
	Apple:      RGB{220, 58, 48},
	Snake:      RGB{72, 190, 90},
	SnakeHead:  RGB{150, 240, 130},
	Crashed:    RGB{235, 80, 60},
	HUD:        RGB{230, 232, 235},
	Accent:     RGB{255, 205, 70},
	Dim:        RGB{130, 135, 145},
}

func (c RGB) floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}
