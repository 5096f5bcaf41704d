// internal/adapter/svg/palette.go

package svg

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"misinfotracker/internal/domain/record"
)

// Category colors are assigned over the alphabetically sorted domain, so
// Facebook and Negative take the first slot.
var (
	platformColors = map[record.Platform]drawing.Color{
		record.Facebook: drawing.ColorFromHex("4c78a8"),
		record.Reddit:   drawing.ColorFromHex("f58518"),
		record.Twitter:  drawing.ColorFromHex("e45756"),
	}

	sentimentColors = map[record.Sentiment]drawing.Color{
		record.Negative: drawing.ColorFromHex("4c78a8"),
		record.Neutral:  drawing.ColorFromHex("f58518"),
		record.Positive: drawing.ColorFromHex("e45756"),
	}

	fallbackColor = drawing.ColorFromHex("9ca3af")

	// heatmap ramp
	heatLow  = drawing.ColorFromHex("deebf7")
	heatHigh = drawing.ColorFromHex("08519c")
	heatZero = drawing.ColorFromHex("f7fbff")

	textDark  = drawing.ColorFromHex("1f2937")
	textLight = drawing.ColorFromHex("ffffff")
	gridColor = drawing.ColorFromHex("e5e7eb")
)

func platformColor(p record.Platform) drawing.Color {
	if c, ok := platformColors[p]; ok {
		return c
	}
	return fallbackColor
}

func sentimentColor(s record.Sentiment) drawing.Color {
	if c, ok := sentimentColors[s]; ok {
		return c
	}
	return fallbackColor
}

// heatColor interpolates the ramp for count/max; zero counts get the blank tint
func heatColor(count, max int) drawing.Color {
	if count <= 0 || max <= 0 {
		return heatZero
	}
	t := float64(count) / float64(max)
	return drawing.Color{
		R: lerp(heatLow.R, heatHigh.R, t),
		G: lerp(heatLow.G, heatHigh.G, t),
		B: lerp(heatLow.B, heatHigh.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
