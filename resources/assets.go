package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

// IconSize is the edge length of generated icons in pixels.
const IconSize = 64

var iconCache sync.Map

// Icon returns a PNG resource showing a filled disc of the given colour.
func Icon(fill color.NRGBA) (fyne.Resource, error) {
	name := fmt.Sprintf("icon_%02x%02x%02x%02x.png", fill.R, fill.G, fill.B, fill.A)
	if cached, ok := iconCache.Load(name); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := encodeDisc(fill, IconSize)
	if err != nil {
		return nil, fmt.Errorf("render icon %s: %w", name, err)
	}

	resource := fyne.NewStaticResource(name, data)
	iconCache.Store(name, resource)
	return resource, nil
}

// MustIcon returns an icon resource or panics on error.
func MustIcon(fill color.NRGBA) fyne.Resource {
	resource, err := Icon(fill)
	if err != nil {
		panic(err)
	}
	return resource
}

func encodeDisc(fill color.NRGBA, size int) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := float64(size-1) / 2
	radius := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, fill)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
