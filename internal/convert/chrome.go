// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeConverter renders Markdown to PDF by wrapping it in an HTML shell
// and printing it with headless Chrome. Requires Chrome/Chromium on the
// system.
type ChromeConverter struct {
	timeout time.Duration
}

// NewChromeConverter creates a Chrome-backed PDF converter.
func NewChromeConverter(timeout time.Duration) *ChromeConverter {
	return &ChromeConverter{timeout: timeout}
}

// Convert writes markdown as a PDF file at outPath.
func (c *ChromeConverter) Convert(markdown, outPath string) error {
	tmp, err := os.CreateTemp("", "agridocs-*.html")
	if err != nil {
		return fmt.Errorf("creating temp HTML: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(htmlShell(markdown)); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp HTML: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp HTML: %w", err)
	}

	pdf, err := c.print(tmpPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("writing PDF artifact: %w", err)
	}
	return nil
}

func (c *ChromeConverter) print(htmlPath string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(),
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	if c.timeout > 0 {
		browserCtx, cancel = context.WithTimeout(browserCtx, c.timeout)
		defer cancel()
	}

	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("resolving HTML path: %w", err)
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+abs),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome PDF rendering: %w", err)
	}
	return pdf, nil
}

// htmlShell wraps Markdown text in a minimal styled HTML page. This is not
// a Markdown renderer: fenced blocks alternate into pre/code tags and line
// breaks become <br>, which is enough for Chrome to print a legible page.
func htmlShell(markdown string) string {
	var body strings.Builder
	inFence := false
	for i, chunk := range strings.Split(html.EscapeString(markdown), "```") {
		if i > 0 {
			if inFence {
				body.WriteString("</code></pre>")
			} else {
				body.WriteString("<pre><code>")
			}
			inFence = !inFence
		}
		if inFence {
			body.WriteString(chunk)
		} else {
			body.WriteString(strings.ReplaceAll(chunk, "\n", "<br>\n"))
		}
	}

	return `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Agriculture Monitoring System API Documentation</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; margin: 40px; }
h1, h2, h3 { color: #2c3e50; }
code { background: #f4f4f4; padding: 2px 6px; border-radius: 3px; }
pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; }
</style>
</head>
<body>
<div>` + body.String() + `</div>
</body>
</html>
`
}
