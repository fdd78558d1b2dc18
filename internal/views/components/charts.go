package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// ChartPanel shows the rendered age and height charts side by side.
type ChartPanel struct {
	container *fyne.Container
	images    []*canvas.Image
	size      fyne.Size
}

// NewChartPanel creates a panel with count image slots of the given size.
func NewChartPanel(count int, width, height float32) *ChartPanel {
	cp := &ChartPanel{size: fyne.NewSize(width, height)}
	cp.createComponents(count)
	cp.buildLayout()
	return cp
}

func (cp *ChartPanel) createComponents(count int) {
	for i := 0; i < count; i++ {
		img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(cp.size)
		cp.images = append(cp.images, img)
	}
}

func (cp *ChartPanel) buildLayout() {
	objects := make([]fyne.CanvasObject, len(cp.images))
	for i, img := range cp.images {
		objects[i] = img
	}
	cp.container = container.NewGridWithColumns(len(objects), objects...)
}

// SetImages replaces the displayed charts. Slots without an image are blanked.
func (cp *ChartPanel) SetImages(images []image.Image) {
	for i, slot := range cp.images {
		if i < len(images) && images[i] != nil {
			slot.Image = images[i]
		} else {
			slot.Image = image.NewRGBA(image.Rect(0, 0, 1, 1))
		}
		slot.Refresh()
	}
}

// Image returns the image currently shown in slot i.
func (cp *ChartPanel) Image(i int) image.Image {
	if i < 0 || i >= len(cp.images) {
		return nil
	}
	return cp.images[i].Image
}

// GetContainer returns the chart container
func (cp *ChartPanel) GetContainer() *fyne.Container {
	return cp.container
}
