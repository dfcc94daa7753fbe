package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateURL("https://api.fountain.com/v2/applicants"))
	require.NoError(t, validateURL("http://localhost:8080/applicants"))

	assert.Error(t, validateURL("api.fountain.com/v2/applicants"))
	assert.Error(t, validateURL("ftp://api.fountain.com"))
	assert.Error(t, validateURL("https://"))
	assert.Error(t, validateURL("://bad"))
}

func TestValidateRetries(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateRetries(0))
	require.NoError(t, validateRetries(3))
	assert.Error(t, validateRetries(-1))
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yml := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("app:\n  input: applicants.xlsx\n"), 0o600))

	txt := filepath.Join(dir, "config.txt")
	require.NoError(t, os.WriteFile(txt, nil, 0o600))

	require.NoError(t, validateConfig(yml))
	assert.ErrorContains(t, validateConfig(txt), "invalid extension")
	assert.ErrorContains(t, validateConfig(dir), "is a directory")
	assert.ErrorContains(t, validateConfig(filepath.Join(dir, "missing.yml")), "does not exist")
}

func TestValidatePositive(t *testing.T) {
	t.Parallel()

	require.NoError(t, validatePositive(time.Second))
	assert.Error(t, validatePositive(0))
	assert.Error(t, validatePositive(-time.Millisecond))
}
