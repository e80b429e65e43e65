// Package fixtures loads the sample datasets shown on the dashboard, orders
// and analytics screens. Datasets are JSON documents, optionally gzipped,
// read from local disk or S3.
package fixtures

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
)

// Dataset file names, relative to the fixtures directory or S3 prefix.
const (
	DashboardFile = "dashboard.json"
	OrdersFile    = "orders.json"
	AnalyticsFile = "analytics.json"
)

// Loader reads a dataset and returns its decompressed JSON bytes.
type Loader interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// Catalog serves the loaded datasets. Datasets are read-only after loading.
type Catalog interface {
	Dashboard() model.Dashboard
	Orders() model.OrdersBoard
	Analytics() model.Analytics
}

var gzipMagic = []byte{0x1f, 0x8b}

// readPayload reads r fully, transparently inflating gzip content.
func readPayload(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}

	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	return io.ReadAll(gz)
}
