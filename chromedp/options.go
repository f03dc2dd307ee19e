package chromedp

import "time"

// config holds the settings of a Browser.
type config struct {
	chromePath string
	timeout    time.Duration
	noSandbox  bool
	download   bool
	page       PageConfig
	viewport   Viewport
}

func defaultConfig() config {
	return config{
		timeout:  30 * time.Second,
		page:     DefaultPageConfig(),
		viewport: DefaultViewport(),
	}
}

// Option configures a Browser.
type Option func(*config)

// WithChromePath sets the Chrome or Chromium executable. By default standard
// locations are searched.
func WithChromePath(path string) Option {
	return func(c *config) {
		c.chromePath = path
	}
}

// WithTimeout bounds a single Print or Rasterize call. Defaults to 30
// seconds. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox, which is required when running
// as root inside containers.
func WithNoSandbox() Option {
	return func(c *config) {
		c.noSandbox = true
	}
}

// WithDownload fetches a compatible Chromium build into the local cache when
// no executable path is configured.
func WithDownload() Option {
	return func(c *config) {
		c.download = true
	}
}

// WithPage sets the paper layout used by Print.
func WithPage(p PageConfig) Option {
	return func(c *config) {
		c.page = p
	}
}

// WithViewport sets the window size used by Rasterize.
func WithViewport(v Viewport) Option {
	return func(c *config) {
		c.viewport = v
	}
}
