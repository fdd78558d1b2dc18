package models

import (
	"fmt"
	"image/color"
	"sync"
)

// Series styling used by the age and height charts.
var (
	AgeColor    = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	HeightColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

const (
	EntryAxisLabel   = "Entry #"
	AgeChartTitle    = "Age Chart"
	HeightChartTitle = "Height Chart"
)

// ChartModel derives the age and height series from a record set and pushes
// them to a ChartSurface. Both series are rebuilt from scratch every time.
type ChartModel struct {
	mu      sync.RWMutex
	surface ChartSurface
	ages    []float64
	heights []float64
}

// NewChartModel creates a chart model drawing onto surface.
func NewChartModel(surface ChartSurface) *ChartModel {
	return &ChartModel{surface: surface}
}

// Rebuild recomputes both series by entry position and redraws the surface.
func (c *ChartModel) Rebuild(records []Record) error {
	ages := make([]float64, len(records))
	heights := make([]float64, len(records))
	for i, r := range records {
		ages[i] = float64(r.Age)
		heights[i] = r.Height
	}

	c.mu.Lock()
	c.ages = ages
	c.heights = heights
	c.mu.Unlock()

	if c.surface == nil {
		return nil
	}

	c.surface.Clear()
	c.surface.Plot(AgeSeries(ages))
	c.surface.Plot(HeightSeries(heights))
	if err := c.surface.Draw(); err != nil {
		return fmt.Errorf("draw charts: %w", err)
	}
	return nil
}

// Ages returns a copy of the age series.
func (c *ChartModel) Ages() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]float64(nil), c.ages...)
}

// Heights returns a copy of the height series.
func (c *ChartModel) Heights() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]float64(nil), c.heights...)
}

// AgeSeries builds the age bar series.
func AgeSeries(values []float64) BarSeries {
	return BarSeries{
		Title:  AgeChartTitle,
		XLabel: EntryAxisLabel,
		YLabel: "Age",
		Color:  AgeColor,
		Values: values,
	}
}

// HeightSeries builds the height bar series.
func HeightSeries(values []float64) BarSeries {
	return BarSeries{
		Title:  HeightChartTitle,
		XLabel: EntryAxisLabel,
		YLabel: "Height",
		Color:  HeightColor,
		Values: values,
	}
}
