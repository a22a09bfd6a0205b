// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

const binPandoc = "pandoc"

// Output formats passed to pandoc's --to flag.
const (
	formatHTML5 = "html5"
	formatPDF   = "pdf"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// PandocConverter renders Markdown by piping it through the pandoc binary.
// Its stdout/stderr and exit code are the whole contract surface.
type PandocConverter struct {
	format  string
	timeout time.Duration
	exec    executor
}

// NewPandocConverter creates a converter targeting the given pandoc output
// format. It verifies that pandoc exists on PATH before returning.
func NewPandocConverter(format string, timeout time.Duration) (*PandocConverter, error) {
	return newPandocConverter(format, timeout, defaultExec)
}

func newPandocConverter(format string, timeout time.Duration, ex executor) (*PandocConverter, error) {
	if _, err := ex.LookPath(binPandoc); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", binPandoc, err)
	}
	return &PandocConverter{format: format, timeout: timeout, exec: ex}, nil
}

// Convert feeds markdown to pandoc on stdin and has it write the artifact
// at outPath. A non-zero exit surfaces as an error carrying pandoc's
// stderr.
func (p *PandocConverter) Convert(markdown, outPath string) error {
	ctx := context.Background()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	args := []string{
		"--from", "markdown",
		"--to", p.format,
		"--toc",
		"--standalone",
		"--output", outPath,
	}

	var stderr bytes.Buffer
	if err := p.exec.RunPiped(ctx, binPandoc, args, strings.NewReader(markdown), &stderr); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("pandoc %s conversion: %w: %s", p.format, err, msg)
		}
		return fmt.Errorf("pandoc %s conversion: %w", p.format, err)
	}
	return nil
}
