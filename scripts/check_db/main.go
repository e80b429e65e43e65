package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tanishkajain081/dabite-restaurant/internal/config"
	"github.com/tanishkajain081/dabite-restaurant/internal/database"
	"github.com/tanishkajain081/dabite-restaurant/internal/repository"
)

// check_db connects with the same DB_* settings as the API server and
// reports which portal tables exist. With -migrate it applies the schema
// first.
func main() {
	migrate := flag.Bool("migrate", false, "apply the portal schema before checking")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully connected to database: %s\n", dbName)

	if *migrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Schema applied")
	}

	missing := 0
	for _, table := range repository.Tables {
		var exists bool
		err := pool.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", "public."+table).Scan(&exists)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Lookup of %s failed: %v\n", table, err)
			os.Exit(1)
		}

		mark := "ok"
		if !exists {
			mark = "MISSING"
			missing++
		}
		fmt.Printf("  %-26s %s\n", table, mark)
	}

	if missing > 0 {
		fmt.Fprintf(os.Stderr, "%d table(s) missing; rerun with -migrate or create them in the provider console\n", missing)
		os.Exit(1)
	}
}
