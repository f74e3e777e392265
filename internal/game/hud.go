package game

import "fmt"

// RenderHUD queues the overlay text for the current frame: score line and
// status while playing, title and key help in the menu, revive banner
// while crashed.
func RenderHUD(rend *Renderer, session *GameSession, snake *Snake, cfg *Settings, fbW, fbH int) {
	scale := float32(fbH) / float32(WindowHeight) * 2

	switch session.State {
	case StateMenu:
		title := "TILESNAKE"
		ts := scale * 3
		rend.DrawString(title,
			(fbW-StringWidth(title, ts))/2, fbH/3, ts, Palette.Snake)

		lines := []string{
			"SPACE TO START",
			"",
			"ARROWS/WASD MOVE - SHIFT GROWS",
			"F FLIP - R REVIVE - X DROP TAIL",
			"P AUTOPILOT - ESC QUIT",
		}
		y := fbH / 2
		for i, line := range lines {
			col := Palette.Dim
			if i == 0 {
				col = Palette.HUD
			}
			rend.DrawString(line,
				(fbW-StringWidth(line, scale))/2, y, scale, col)
			y += int(float32(FontCellH)*scale) + 4
		}
		if session.BestScore > 0 {
			best := fmt.Sprintf("BEST: %d", session.BestScore)
			rend.DrawString(best,
				(fbW-StringWidth(best, scale))/2, y+12, scale, Palette.Accent)
		}

	case StatePlaying:
		pad := int(8 * scale / 2)
		rend.DrawString(fmt.Sprintf("SCORE %d", session.Score),
			pad, pad, scale, Palette.HUD)
		rend.DrawString(fmt.Sprintf("LEN %d", snake.Len()),
			fbW/3, pad, scale, Palette.HUD)

		fails := fmt.Sprintf("FAILS %d/%d", snake.FailCount(), cfg.AllowedFails)
		if cfg.AllowedFails < 0 {
			fails = fmt.Sprintf("FAILS %d/-", snake.FailCount())
		}
		col := Palette.HUD
		if snake.FailCount() > 0 {
			col = Palette.Accent
		}
		rend.DrawString(fails, fbW/2+fbW/12, pad, scale, col)

		if cfg.Autopilot {
			rend.DrawString("AUTO", fbW-StringWidth("AUTO", scale)-pad, pad,
				scale, Palette.Accent)
		}

		if snake.Crashed() {
			banner := "CRASHED - PRESS R TO REVIVE"
			bs := scale * 1.5
			rend.DrawString(banner,
				(fbW-StringWidth(banner, bs))/2, fbH/2, bs, Palette.Crashed)
		}
	}
}
