package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"shopcore/internal/model"
	"shopcore/internal/pricing"
)

// gencatalog writes a randomized seller inventory JSON document, handy for
// demo data and for load-testing the persistence layer.
func main() {
	var count int
	var outputFile string
	flag.IntVar(&count, "count", 50, "number of products to generate")
	flag.StringVar(&outputFile, "output", "seller_inventory.json", "output file")
	flag.Parse()

	if err := generateCatalog(count, outputFile); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func generateCatalog(count int, outputFile string) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	brands := []string{"Soundline", "Keyforge", "Northpace", "Harbor & Co", "Brewcraft", "Lumen Atelier"}
	categories := []string{"electronics", "footwear", "accessories", "kitchen", "home"}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	base := time.Now().UnixMilli()

	products := make([]model.Product, 0, count)
	for i := 0; i < count; i++ {
		price := decimal.NewFromInt(int64(10 + rng.Intn(490)))
		p := model.Product{
			ID:       base + int64(i),
			Title:    fmt.Sprintf("Sample Product %d", i+1),
			Brand:    brands[rng.Intn(len(brands))],
			Category: categories[rng.Intn(len(categories))],
			Image:    fmt.Sprintf("sample-%d.jpg", i+1),
			Price:    price,
			Stock:    rng.Intn(100),
			Rating:   decimal.NewFromInt(int64(1 + rng.Intn(5))),
		}
		// Roughly a third of the items carry a struck-through price.
		if rng.Intn(3) == 0 {
			orig := price.Mul(decimal.NewFromFloat(1.25)).Round(2)
			p.OriginalPrice = &orig
		}
		p.DiscountPercent = pricing.DiscountPercent(p.Price, p.OriginalPrice)
		products = append(products, p)
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	slog.Info("generated catalog", "products", count, "output", outputFile)
	return nil
}
