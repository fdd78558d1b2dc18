package models

import (
	"image/color"
	"strconv"
)

// Record is one persisted person entry. ID is assigned by the store on insert
// and never changes afterwards.
type Record struct {
	ID      int64
	Name    string
	Age     int
	Address string
	Height  float64
}

// FormatHeight renders a height the way the table and CLI display it.
func FormatHeight(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// BarSeries is one bar chart handed to a ChartSurface.
type BarSeries struct {
	Title  string
	XLabel string
	YLabel string
	Color  color.RGBA
	Values []float64
}

// ChartSurface receives plot instructions from a ChartModel. Clear drops
// everything plotted so far, Draw publishes what was plotted since.
type ChartSurface interface {
	Clear()
	Plot(series BarSeries)
	Draw() error
}
