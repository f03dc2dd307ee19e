package chromedp

// PageSize is a paper size in centimeters.
type PageSize struct {
	Width  float64
	Height float64
}

// Standard paper sizes.
var (
	A4     = PageSize{Width: 21.0, Height: 29.7}
	Letter = PageSize{Width: 21.59, Height: 27.94}
)

// PageConfig controls PDF output. Zero fields fall back to
// DefaultPageConfig values.
type PageConfig struct {
	Size      PageSize
	Landscape bool
	// Margin in centimeters, applied to every side.
	Margin float64
	// Scale of the page rendering, between 0.1 and 2.0.
	Scale float64
}

// DefaultPageConfig returns A4 portrait with 2 cm margins at scale 1.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Size:   A4,
		Margin: 2.0,
		Scale:  1.0,
	}
}

func (p PageConfig) resolved() PageConfig {
	d := DefaultPageConfig()
	if p.Size == (PageSize{}) {
		p.Size = d.Size
	}
	if p.Margin <= 0 {
		p.Margin = d.Margin
	}
	if p.Scale <= 0 {
		p.Scale = d.Scale
	}
	return p
}

// paperInches returns the paper width, height and margin in inches,
// accounting for orientation.
func (p PageConfig) paperInches() (width, height, margin float64) {
	r := p.resolved()
	width, height = cmToInches(r.Size.Width), cmToInches(r.Size.Height)
	if r.Landscape {
		width, height = height, width
	}
	return width, height, cmToInches(r.Margin)
}

func cmToInches(cm float64) float64 {
	return cm / 2.54
}

// Viewport is the browser window size in CSS pixels used for snapshots. The
// snapshot covers the full page height regardless of Height.
type Viewport struct {
	Width  int64
	Height int64
}

// DefaultViewport returns an 800x600 window.
func DefaultViewport() Viewport {
	return Viewport{Width: 800, Height: 600}
}

func (v Viewport) resolved() Viewport {
	d := DefaultViewport()
	if v.Width <= 0 {
		v.Width = d.Width
	}
	if v.Height <= 0 {
		v.Height = d.Height
	}
	return v
}
