package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf)

	logger.Info("purchase settled: content=%d", 1)
	logger.Warn("cache miss for %s", "content:1")
	logger.Error("settlement failed: %v", "boom")

	out := buf.String()
	assert.Contains(t, out, "INFO: ")
	assert.Contains(t, out, "purchase settled: content=1")
	assert.Contains(t, out, "WARN: ")
	assert.Contains(t, out, "cache miss for content:1")
	assert.Contains(t, out, "ERROR: ")
	assert.Contains(t, out, "settlement failed: boom")
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.log")
	logger := NewWithFile(path)
	assert.NotNil(t, logger)

	// Test that Info doesn't panic
	logger.Info("Test message: %s", "info")
}

func TestNewWithFile_EmptyPath(t *testing.T) {
	logger := NewWithFile("")
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
}
