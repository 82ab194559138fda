// Order demo — prices a sample order and prints the summary.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/example/order-demo/go/pkg/models"
	"github.com/example/order-demo/go/pkg/orders"
	"github.com/shopspring/decimal"
)

func run(w io.Writer) {
	user := models.NewUser(1, "Alice", "alice@example.com")
	products := []models.Product{
		models.NewProduct(101, "Widget", decimal.RequireFromString("29.99")),
		models.NewProduct(102, "Gadget", decimal.RequireFromString("49.99")),
	}

	fmt.Fprintf(w, "Order processed: %s\n", orders.ProcessOrder(user, products))
}

func main() {
	run(os.Stdout)
}
