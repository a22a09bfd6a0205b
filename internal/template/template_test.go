// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api-template.md")
	content := "# Agriculture API\n\n## Overview\n\nSensor endpoints.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, content, doc.Content)
}

func TestLoadNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")

	doc, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), path)
}

func TestIsNotFoundOtherError(t *testing.T) {
	assert.False(t, IsNotFound(os.ErrPermission))
}
