package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for datasets on the local file system.
type fileLoader struct {
	dir    string
	logger zerolog.Logger
}

// NewFileLoader creates a loader reading datasets from dir. A dataset
// "x.json" is read from dir/x.json, or from dir/x.json.gz when only the
// compressed file exists.
func NewFileLoader(dir string, logger zerolog.Logger) Loader {
	return &fileLoader{
		dir:    dir,
		logger: logger.With().Str("component", "fixture-loader").Logger(),
	}
}

func (l *fileLoader) Load(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(l.dir, name)
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		path += ".gz"
		file, err = os.Open(path)
	}
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open fixture file")
		return nil, fmt.Errorf("failed to open fixture file %s: %w", path, err)
	}
	defer file.Close()

	data, err := readPayload(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read fixture file")
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}

	l.logger.Debug().Str("file", path).Int("bytes", len(data)).Msg("fixture file loaded")

	return data, nil
}
