package command

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/adp-pizza/pizzabot/pkg/types"
)

// formatPrice renders a price without trailing zeros.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// renderCartTable renders cart lines as an aligned monospace table, shown
// inside a <code> block.
func renderCartTable(entries []types.CartEntry) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Назва\tN\tСума")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.ProductName, e.Quantity, formatPrice(e.Total))
	}
	_ = w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

// cartTotal sums the line totals.
func cartTotal(entries []types.CartEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Total
	}
	return total
}

// orderItems copies cart lines into an immutable order snapshot.
func orderItems(entries []types.CartEntry) []types.OrderItem {
	items := make([]types.OrderItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, types.OrderItem{
			ProductName: e.ProductName,
			Quantity:    e.Quantity,
			Total:       e.Total,
		})
	}
	return items
}
