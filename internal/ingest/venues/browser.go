// Package venues scrapes arena event calendars directly from the
// venue websites with a headless browser. Each scraper knows one
// site's calendar DOM; all of them emit the same ScrapedEvent shape.
package venues

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// UserAgent for the headless browser sessions.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Browser owns a shared chromedp allocator; each scraper run gets its
// own tab context off it.
type Browser struct {
	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewBrowser creates the headless Chrome allocator.
func NewBrowser() *Browser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &Browser{allocCtx: allocCtx, cancel: cancel}
}

// Close releases the allocator.
func (b *Browser) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}

// newTab opens a fresh browser context with a timeout.
func (b *Browser) newTab(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	tabCtx, cancelTab := chromedp.NewContext(b.allocCtx)
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, timeout)

	cancel := func() {
		cancelTimeout()
		cancelTab()
	}

	// Tie the tab to the caller's context so cancellation propagates.
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-tabCtx.Done():
		}
	}()

	return tabCtx, cancel
}

// textOf reads the trimmed text of the first element matching sel.
func textOf(ctx context.Context, sel string) (string, error) {
	var text string
	if err := chromedp.Run(ctx, chromedp.Text(sel, &text, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("reading %s: %w", sel, err)
	}
	return text, nil
}

// clickAndSettle clicks sel via JS (the next-month controls are divs
// with role=button, not anchors) and waits for the calendar to
// rerender.
func clickAndSettle(ctx context.Context, sel string) error {
	err := chromedp.Run(ctx,
		chromedp.Evaluate(fmt.Sprintf(`document.querySelector(%q).click()`, sel), nil),
		chromedp.Sleep(2*time.Second),
	)
	if err != nil {
		return fmt.Errorf("clicking %s: %w", sel, err)
	}
	return nil
}

// pageHTML snapshots the rendered document for goquery parsing.
func pageHTML(ctx context.Context) (string, error) {
	var html string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("capturing page HTML: %w", err)
	}
	if html == "" {
		return "", fmt.Errorf("empty HTML content returned")
	}
	return html, nil
}
