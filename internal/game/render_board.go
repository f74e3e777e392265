package game

import "math"

// boardLayout maps the tile grid into framebuffer pixels: origin of the
// board's top-left corner plus the on-screen tile size. The window is not
// resizable, but the framebuffer may be scaled (hidpi).
func boardLayout(fbW, fbH int) (ox, oy, tile float32) {
	scaleX := float32(fbW) / float32(WindowWidth)
	scaleY := float32(fbH) / float32(WindowHeight)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	tile = TilePx * scale
	margin := BoardMarginY * scale
	ox = (float32(fbW) - tile*GridCols) / 2
	oy = margin + (float32(fbH)-margin-tile*GridRows)/2
	return ox, oy, tile
}

func appendSprite(buf []float32, x, y, size float32, col RGB, alpha float32) []float32 {
	r, g, b := col.floats()
	return append(buf, x, y, size, r, g, b, alpha)
}

// BoardSprites builds the per-frame sprite buffer for every tile. buf is
// reused across frames.
func BoardSprites(grid *Grid, snake *Snake, now float64, fbW, fbH int, buf []float32) []float32 {
	buf = buf[:0]
	ox, oy, tile := boardLayout(fbW, fbH)

	head := snake.Head()
	pulse := float32(0.5 + 0.5*math.Sin(now*8))

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			t := grid.Tile(r, c)
			x := ox + (float32(c)+0.5)*tile
			y := oy + (float32(r)+0.5)*tile

			// Checkerboard base under everything.
			base := Palette.BoardDark
			if (r+c)%2 == 0 {
				base = Palette.BoardLight
			}
			buf = appendSprite(buf, x, y, tile, base, 1)

			switch t.Kind() {
			case TileWall:
				buf = appendSprite(buf, x, y, tile-2, Palette.Wall, 1)
			case TileApple:
				buf = appendSprite(buf, x, y, tile*0.6, Palette.Apple, 1)
			case TileSnake:
				col := Palette.Snake
				if t == head {
					col = Palette.SnakeHead
					if snake.Crashed() {
						col = Palette.Crashed
						// Pulse the head while crashed.
						buf = appendSprite(buf, x, y, tile-2, col, 0.4+0.6*pulse)
						continue
					}
				}
				buf = appendSprite(buf, x, y, tile-2, col, 1)
			}
		}
	}
	return buf
}

// GlowSprites builds the additive glow pass: apple halos plus a red pulse
// on a crashed head.
func GlowSprites(grid *Grid, snake *Snake, now float64, fbW, fbH int, buf []float32) []float32 {
	buf = buf[:0]
	ox, oy, tile := boardLayout(fbW, fbH)
	pulse := float32(0.5 + 0.5*math.Sin(now*8))

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			t := grid.Tile(r, c)
			if !t.IsApple() {
				continue
			}
			x := ox + (float32(c)+0.5)*tile
			y := oy + (float32(r)+0.5)*tile
			buf = append(buf, x, y, tile*2.2, 0.35, 0.07, 0.05, 1)
		}
	}

	if snake.Crashed() {
		if h := snake.Head(); h != nil {
			x := ox + (float32(h.Col)+0.5)*tile
			y := oy + (float32(h.Row)+0.5)*tile
			buf = append(buf, x, y, tile*3, 0.5*pulse, 0.08*pulse, 0.04*pulse, 1)
		}
	}
	return buf
}
