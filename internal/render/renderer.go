package render

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Renderer converts an HTML document into PDF bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromiumRenderer prints documents through a headless Chromium instance.
// The browser connection is shared; pages are per-call.
type ChromiumRenderer struct {
	browser *rod.Browser
}

// NewChromium launches (or connects to) headless Chromium.
func NewChromium() (*ChromiumRenderer, error) {
	browser := rod.New()
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to chromium: %w", err)
	}
	return &ChromiumRenderer{browser: browser}, nil
}

// Close shuts the browser down.
func (r *ChromiumRenderer) Close() error {
	return r.browser.Close()
}

// RenderPDF loads the document into a fresh page and prints it.
func (r *ChromiumRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	page, err := r.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("failed to set page content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed waiting for page load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{})
	if err != nil {
		return nil, fmt.Errorf("failed to print pdf: %w", err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf stream: %w", err)
	}
	return data, nil
}
