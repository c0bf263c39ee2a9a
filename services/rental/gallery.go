package rental

import (
	"fmt"

	"boulderhub/models"
)

// Slide is one image in the gallery carousel.
type Slide struct {
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

// Gallery is the ordered carousel for one crashpad's photos: the primary
// image first and current, then the gallery images in source order.
type Gallery struct {
	Slides  []Slide `json:"slides"`
	Current int     `json:"current"`
}

// NewGallery builds the carousel for a crashpad.
func NewGallery(pad models.Crashpad) *Gallery {
	slides := []Slide{{Image: pad.Image, Alt: pad.Name}}
	for i, img := range pad.GalleryImages {
		slides = append(slides, Slide{
			Image: img.Image,
			Alt:   fmt.Sprintf("%s gallery image %d", pad.Name, i+1),
		})
	}
	return &Gallery{Slides: slides}
}

// Next advances the carousel; a no-op on the last slide.
func (g *Gallery) Next() {
	if g.Current < len(g.Slides)-1 {
		g.Current++
	}
}

// Previous steps back; a no-op on the first slide.
func (g *Gallery) Previous() {
	if g.Current > 0 {
		g.Current--
	}
}

// HasNext reports whether the "next" control should be visible.
func (g *Gallery) HasNext() bool { return g.Current < len(g.Slides)-1 }

// HasPrevious reports whether the "previous" control should be visible.
func (g *Gallery) HasPrevious() bool { return g.Current > 0 }

// CurrentSlide returns the active slide.
func (g *Gallery) CurrentSlide() Slide { return g.Slides[g.Current] }
