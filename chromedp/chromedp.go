// Package chromedp prints and snapshots standalone HTML pages with a
// headless Chrome instance driven over the DevTools protocol.
package chromedp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/fwojciec/docconv"
	"github.com/go-rod/rod/lib/launcher"
)

var (
	_ docconv.Printer    = (*Browser)(nil)
	_ docconv.Rasterizer = (*Browser)(nil)
)

// Browser owns one headless browser process that is reused across calls.
// It is safe for concurrent use. Call Close to release the process.
type Browser struct {
	cfg           config
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// New starts a headless browser. Errors from a missing or broken executable
// surface here rather than on the first conversion.
func New(opts ...Option) (*Browser, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.download {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("no-first-run", true),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.NoSandbox)
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("starting browser: %w", err)
	}

	return &Browser{
		cfg:           cfg,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// resolveBrowser downloads a Chromium build unless one is already cached and
// returns its executable path.
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("downloading browser: %w", err)
	}
	return path, nil
}

// Close stops the browser. Close is idempotent.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	b.browserCancel()
	b.allocCancel()
	return nil
}

// Print renders html as a PDF using the configured page layout.
func (b *Browser) Print(ctx context.Context, html string) ([]byte, error) {
	width, height, margin := b.cfg.page.paperInches()
	scale := b.cfg.page.resolved().Scale

	var buf []byte
	err := b.run(ctx, html, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().
			WithPaperWidth(width).
			WithPaperHeight(height).
			WithMarginTop(margin).
			WithMarginRight(margin).
			WithMarginBottom(margin).
			WithMarginLeft(margin).
			WithScale(scale).
			WithPrintBackground(true).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, fmt.Errorf("printing page: %w", err)
	}
	return buf, nil
}

// Rasterize renders html as a PNG image of the full page.
func (b *Browser) Rasterize(ctx context.Context, html string) ([]byte, error) {
	vp := b.cfg.viewport.resolved()

	var buf []byte
	err := b.run(ctx, html,
		chromedp.EmulateViewport(vp.Width, vp.Height),
		// Quality 100 selects lossless PNG output.
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("rasterizing page: %w", err)
	}
	return buf, nil
}

// run loads html into a fresh tab and performs actions once the body is
// ready.
func (b *Browser) run(ctx context.Context, html string, actions ...chromedp.Action) error {
	if err := b.checkClosed(); err != nil {
		return err
	}

	path, err := writeTemp(html)
	if err != nil {
		return err
	}
	defer os.Remove(path)

	if b.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(b.browserCtx)
	defer tabCancel()

	// Cancel the tab when the caller's context ends.
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	tasks := chromedp.Tasks{
		chromedp.Navigate("file://" + path),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	tasks = append(tasks, actions...)
	if err := chromedp.Run(tabCtx, tasks); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// writeTemp stores html in a temporary file and returns its absolute path.
func writeTemp(html string) (string, error) {
	f, err := os.CreateTemp("", "docconv-*.html")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	name := f.Name()
	if _, err := f.WriteString(html); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		os.Remove(name)
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

func (b *Browser) checkClosed() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return docconv.ErrClosed
	}
	return nil
}
