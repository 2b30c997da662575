package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/backend"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/config"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/service"
)

// Connectivity check against the commerce backend: fetches the catalog and
// the booking slot window and prints what the storefront would see.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := backend.NewClient(cfg.Backend, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("Checking backend at %s\n\n", cfg.Backend.BaseURL)

	products, err := client.Products(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch products: %v\n", err)
		os.Exit(1)
	}

	available := 0
	for _, p := range products {
		if p.IsAvailable {
			available++
		}
	}
	fmt.Printf("Products: %d (%d available)\n", len(products), available)

	from, to := service.SlotWindow(time.Now().UTC())
	slots, err := client.Slots(ctx, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch production slots: %v\n", err)
		os.Exit(1)
	}

	bookable := 0
	for _, s := range slots {
		if s.Bookable() {
			bookable++
		}
	}
	fmt.Printf("Slots %s to %s: %d (%d bookable)\n", from, to, len(slots), bookable)

	if len(os.Args) > 1 {
		id := os.Args[1]
		product, err := client.Product(ctx, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch product %s: %v\n", id, err)
			os.Exit(1)
		}
		fmt.Printf("\nProduct %s: %s (NGN %.2f, %d sizes, %d images)\n",
			product.ID, product.Name, product.Price, len(product.Sizes), len(product.Images))
	}
}
