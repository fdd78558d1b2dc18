package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSurface struct {
	calls   []string
	plotted []BarSeries
	drawErr error
}

func (s *recordingSurface) Clear() {
	s.calls = append(s.calls, "clear")
	s.plotted = nil
}

func (s *recordingSurface) Plot(series BarSeries) {
	s.calls = append(s.calls, "plot:"+series.Title)
	s.plotted = append(s.plotted, series)
}

func (s *recordingSurface) Draw() error {
	s.calls = append(s.calls, "draw")
	return s.drawErr
}

func TestChartSeriesFollowInsertionOrder(t *testing.T) {
	surface := &recordingSurface{}
	cm := NewChartModel(surface)

	records := []Record{
		{ID: 3, Age: 30, Height: 1.65},
		{ID: 7, Age: 12, Height: 1.2},
		{ID: 9, Age: 71, Height: 1.7},
	}
	require.NoError(t, cm.Rebuild(records))

	for k, r := range records {
		assert.Equal(t, float64(r.Age), cm.Ages()[k])
		assert.Equal(t, r.Height, cm.Heights()[k])
	}
}

func TestChartRebuildClearsBeforePlotting(t *testing.T) {
	surface := &recordingSurface{}
	cm := NewChartModel(surface)

	require.NoError(t, cm.Rebuild(sampleRecords()))
	require.NoError(t, cm.Rebuild(sampleRecords()[:1]))

	assert.Equal(t, []string{
		"clear", "plot:Age Chart", "plot:Height Chart", "draw",
		"clear", "plot:Age Chart", "plot:Height Chart", "draw",
	}, surface.calls)
	require.Len(t, surface.plotted, 2)
	assert.Equal(t, []float64{30}, surface.plotted[0].Values)
}

func TestChartSeriesStyling(t *testing.T) {
	surface := &recordingSurface{}
	require.NoError(t, NewChartModel(surface).Rebuild(sampleRecords()))

	age, height := surface.plotted[0], surface.plotted[1]
	assert.Equal(t, "Age Chart", age.Title)
	assert.Equal(t, "Entry #", age.XLabel)
	assert.Equal(t, "Age", age.YLabel)
	assert.Equal(t, "Height Chart", height.Title)
	assert.Equal(t, "Height", height.YLabel)
	assert.NotEqual(t, age.Color, height.Color)
}

func TestChartEmptyRecordSet(t *testing.T) {
	surface := &recordingSurface{}
	cm := NewChartModel(surface)

	require.NoError(t, cm.Rebuild(nil))
	assert.Empty(t, cm.Ages())
	assert.Empty(t, surface.plotted[0].Values)
}

func TestChartDrawErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	cm := NewChartModel(&recordingSurface{drawErr: boom})

	err := cm.Rebuild(sampleRecords())
	assert.ErrorIs(t, err, boom)
}

func TestChartWithoutSurface(t *testing.T) {
	cm := NewChartModel(nil)
	require.NoError(t, cm.Rebuild(sampleRecords()))
	assert.Len(t, cm.Heights(), 2)
}
