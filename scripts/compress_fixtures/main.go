package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tanishkajain081/dabite-restaurant/internal/fixtures"
)

// compress_fixtures writes a gzipped copy of every sample dataset next to
// its source, ready to be uploaded under the S3 fixtures prefix:
//
//	go run ./scripts/compress_fixtures [dir]
//
// Each source file must parse as JSON before it is compressed.
func main() {
	dataDir := "data/fixtures"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	for _, name := range []string{fixtures.DashboardFile, fixtures.OrdersFile, fixtures.AnalyticsFile} {
		src := filepath.Join(dataDir, name)

		n, err := compressFile(src, src+".gz")
		if err != nil {
			log.Fatalf("Failed to compress %s: %v", src, err)
		}

		fmt.Printf("Created %s.gz (%d bytes in)\n", src, n)
	}

	fmt.Println("\nUpload with:")
	fmt.Printf("  aws s3 cp %s s3://$S3_BUCKET/$S3_PREFIX --recursive --exclude '*' --include '*.gz'\n", dataDir)
}

func compressFile(src, dst string) (int64, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}
	if !json.Valid(data) {
		return 0, fmt.Errorf("%s is not valid JSON", src)
	}

	file, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	gzipWriter.Name = filepath.Base(src)

	n, err := gzipWriter.Write(data)
	if err != nil {
		return 0, fmt.Errorf("failed to write payload: %w", err)
	}

	if err := gzipWriter.Close(); err != nil {
		return 0, fmt.Errorf("failed to flush gzip stream: %w", err)
	}

	return int64(n), nil
}
