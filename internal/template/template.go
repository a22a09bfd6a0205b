// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package template loads Markdown API-documentation templates from disk.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MeIver/agriculture-monitoring-system/pkg/types"
)

// NotFoundError reports a template path that does not exist. A missing
// template is fatal to the run: no artifacts are written.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template file not found at %s", e.Path)
}

// IsNotFound reports whether err is a template NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Load reads the template at path and returns it as a Document.
func Load(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("loading template: %w", err)
	}
	return &types.Document{Path: path, Content: string(data)}, nil
}
