// internal/adapter/svg/heatmap.go

package svg

import (
	"fmt"
	"io"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"misinfotracker/internal/service/charts"
)

// heatmap margins around the cell grid
const (
	heatMarginLeft   = 70
	heatMarginTop    = 10
	heatMarginRight  = 10
	heatMarginBottom = 50
)

// Heatmap draws the (platform, region) count grid with the go-chart SVG
// renderer. Platforms run along x, regions along y.
func Heatmap(w io.Writer, c charts.HeatmapChart) error {
	width := c.Size.Width + heatMarginLeft + heatMarginRight
	height := c.Size.Height + heatMarginTop + heatMarginBottom

	if c.Empty() {
		return Placeholder(w, charts.Size{Width: width, Height: height}, NoDataMessage)
	}

	r, err := newRenderer(width, height)
	if err != nil {
		return err
	}

	cellW := c.Size.Width / len(c.Platforms)
	cellH := c.Size.Height / len(c.Regions)

	for row, region := range c.Regions {
		for col, platform := range c.Platforms {
			cell, _ := c.Cell(platform, region)
			box := chart.Box{
				Left:   heatMarginLeft + col*cellW,
				Top:    heatMarginTop + row*cellH,
				Right:  heatMarginLeft + (col+1)*cellW,
				Bottom: heatMarginTop + (row+1)*cellH,
			}

			fill := heatColor(cell.Count, c.Max)
			r.SetFillColor(fill)
			r.SetStrokeColor(textLight)
			r.SetStrokeWidth(1)
			drawBox(r, box)

			fontColor := textDark
			if c.Max > 0 && cell.Count*2 > c.Max {
				fontColor = textLight
			}
			drawCentered(r, strconv.Itoa(cell.Count), box, 12, fontColor)
		}
	}

	// Region labels
	for row, region := range c.Regions {
		label := chart.Box{
			Left:   0,
			Top:    heatMarginTop + row*cellH,
			Right:  heatMarginLeft - 6,
			Bottom: heatMarginTop + (row+1)*cellH,
		}
		drawRightAligned(r, string(region), label, 11, textDark)
	}

	// Platform labels
	gridBottom := heatMarginTop + len(c.Regions)*cellH
	for col, platform := range c.Platforms {
		label := chart.Box{
			Left:   heatMarginLeft + col*cellW,
			Top:    gridBottom + 4,
			Right:  heatMarginLeft + (col+1)*cellW,
			Bottom: gridBottom + 22,
		}
		drawCentered(r, string(platform), label, 11, textDark)
	}

	legend := fmt.Sprintf("count(): 0 to %d", c.Max)
	drawCentered(r, legend, chart.Box{
		Left:   heatMarginLeft,
		Top:    gridBottom + 26,
		Right:  heatMarginLeft + len(c.Platforms)*cellW,
		Bottom: gridBottom + 44,
	}, 10, textDark)

	if err := r.Save(w); err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	return nil
}

// Placeholder draws an empty framed canvas with a centered message
func Placeholder(w io.Writer, size charts.Size, message string) error {
	r, err := newRenderer(size.Width, size.Height)
	if err != nil {
		return err
	}

	box := chart.Box{Left: 1, Top: 1, Right: size.Width - 1, Bottom: size.Height - 1}
	r.SetFillColor(heatZero)
	r.SetStrokeColor(gridColor)
	r.SetStrokeWidth(1)
	drawBox(r, box)
	drawCentered(r, message, box, 12, textDark)

	if err := r.Save(w); err != nil {
		return fmt.Errorf("render placeholder: %w", err)
	}
	return nil
}

func newRenderer(width, height int) (chart.Renderer, error) {
	r, err := chart.SVG(width, height)
	if err != nil {
		return nil, fmt.Errorf("create svg renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load default font: %w", err)
	}
	r.SetFont(font)
	return r, nil
}

func drawBox(r chart.Renderer, b chart.Box) {
	r.MoveTo(b.Left, b.Top)
	r.LineTo(b.Right, b.Top)
	r.LineTo(b.Right, b.Bottom)
	r.LineTo(b.Left, b.Bottom)
	r.Close()
	r.FillStroke()
}

func drawCentered(r chart.Renderer, text string, b chart.Box, size float64, color drawing.Color) {
	r.SetFontSize(size)
	r.SetFontColor(color)
	m := r.MeasureText(text)
	x := b.Left + (b.Width()-m.Width())/2
	y := b.Top + (b.Height()+m.Height())/2
	r.Text(text, x, y)
}

func drawRightAligned(r chart.Renderer, text string, b chart.Box, size float64, color drawing.Color) {
	r.SetFontSize(size)
	r.SetFontColor(color)
	m := r.MeasureText(text)
	x := b.Right - m.Width()
	y := b.Top + (b.Height()+m.Height())/2
	r.Text(text, x, y)
}
