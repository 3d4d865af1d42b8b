package main

import (
	"encoding/json"
	"flag"
	"os"

	"go.uber.org/zap"

	"storefront/internal/catalog"
)

// Converts a CSV catalog export into the JSON fixture format embedded by
// the catalog package.
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	csvPath := flag.String("csv", "", "path to the catalog CSV export")
	outPath := flag.String("out", "", "output JSON path (default: stdout)")
	flag.Parse()

	if *csvPath == "" {
		logger.Fatal("missing -csv flag")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatal("open csv", zap.Error(err))
	}
	defer f.Close()

	products, err := catalog.NewCSVImporter(f).Run()
	if err != nil {
		logger.Fatal("import", zap.Error(err))
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		logger.Fatal("encode", zap.Error(err))
	}
	data = append(data, '\n')

	if *outPath == "" {
		os.Stdout.Write(data)
	} else if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		logger.Fatal("write output", zap.Error(err))
	}

	logger.Info("catalog imported", zap.Int("products", len(products)))
}
