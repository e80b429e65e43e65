package fixtures

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture writes content to dir/name, gzipping it when name ends in .gz.
func writeFixture(t *testing.T, dir, name, content string) {
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	if filepath.Ext(name) != ".gz" {
		_, err = file.WriteString(content)
		require.NoError(t, err)
		return
	}

	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
}

func TestFileLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "plain.json", `{"kind":"plain"}`)
	writeFixture(t, dir, "packed.json.gz", `{"kind":"packed"}`)
	writeFixture(t, dir, "both.json", `{"kind":"uncompressed wins"}`)
	writeFixture(t, dir, "both.json.gz", `{"kind":"compressed"}`)

	loader := NewFileLoader(dir, zerolog.Nop())

	tests := []struct {
		name        string
		file        string
		expected    string
		expectError bool
	}{
		{name: "Plain JSON", file: "plain.json", expected: `{"kind":"plain"}`},
		{name: "Gzip fallback", file: "packed.json", expected: `{"kind":"packed"}`},
		{name: "Explicit gzip name", file: "packed.json.gz", expected: `{"kind":"packed"}`},
		{name: "Uncompressed preferred", file: "both.json", expected: `{"kind":"uncompressed wins"}`},
		{name: "Missing file", file: "missing.json", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := loader.Load(context.Background(), tt.file)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "missing.json")
				return
			}

			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestFileLoader_ContextCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "plain.json", `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileLoader(dir, zerolog.Nop()).Load(ctx, "plain.json")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileLoader_CorruptGzip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte{0x1f, 0x8b, 0x00, 0x01}, 0o644))

	_, err := NewFileLoader(dir, zerolog.Nop()).Load(context.Background(), "bad.json")
	assert.Error(t, err)
}
