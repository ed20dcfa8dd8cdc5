// Command mobilementor compares mobile phones from a CSV export by summing
// per-category rank points.
//
// Usage:
//
//	mobilementor compare --names "Galaxy S21" --names "iPhone 12"
//	mobilementor brand Samsung --category battery_mah
//	mobilementor brands --measure price_chf --aggregation avg --format table
//	mobilementor columns --file mobiles.csv
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ahaeu/mobilementor/internal/cli"
	"github.com/ahaeu/mobilementor/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	observability.Sync()
	os.Exit(code)
}
