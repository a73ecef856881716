package render

import "image"

func row(y, h int) image.Rectangle {
	return image.Rect(boardSide, y, ScreenW-boardSide, y+h)
}

// LoginHotspots covers the sign-in method toggle and the play button.
func LoginHotspots() []Hotspot {
	half := (ScreenW - 2*boardSide - barGap) / 2
	return []Hotspot{
		{Action: ActionManual, Label: "Username", Rect: image.Rect(boardSide, 300, boardSide+half, 340)},
		{Action: ActionPhone, Label: "Phone", Rect: image.Rect(ScreenW-boardSide-half, 300, ScreenW-boardSide, 340)},
		{Action: ActionPlay, Label: "Play now", Rect: row(480, 52)},
	}
}

// BackHotspot returns to the game from a secondary screen.
func BackHotspot() Hotspot {
	return Hotspot{Action: ActionBack, Label: "< Back", Rect: image.Rect(12, 12, 84, 40)}
}

// WalletHotspots lays out method buttons, form fields and submit. Field
// hotspots carry the field index in Index; method hotspots the catalog index.
func WalletHotspots(methods, fields int) []Hotspot {
	out := []Hotspot{BackHotspot()}
	const (
		cols  = 4
		mh    = 30
		mTop  = 96
		fh    = 28
		fGap  = 6
		fLead = 16
	)
	mw := (ScreenW - 2*boardSide - (cols-1)*barGap) / cols
	for i := 0; i < methods; i++ {
		x := boardSide + (i%cols)*(mw+barGap)
		y := mTop + (i/cols)*(mh+barGap)
		out = append(out, Hotspot{Action: ActionPickMethod, Index: i, Rect: image.Rect(x, y, x+mw, y+mh)})
	}
	rowsUsed := (methods + cols - 1) / cols
	y := mTop + rowsUsed*(mh+barGap) + fLead
	for i := 0; i < fields; i++ {
		out = append(out, Hotspot{Action: ActionFocusField, Index: i, Rect: row(y+14, fh)})
		y += 14 + fh + fGap
	}
	out = append(out, Hotspot{Action: ActionSubmit, Label: "Request withdrawal", Rect: row(y+8, 40)})
	return out
}
