package chromedp

// PaperInches exposes the page geometry sent to the print command.
func PaperInches(p PageConfig) (width, height, margin float64) {
	return p.paperInches()
}

// ResolvedViewport exposes viewport defaulting.
func ResolvedViewport(v Viewport) Viewport {
	return v.resolved()
}
