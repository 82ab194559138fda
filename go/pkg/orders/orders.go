// Package orders turns a user and a product list into a priced order summary.
package orders

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/example/order-demo/go/pkg/models"
	"github.com/example/order-demo/go/pkg/shoputil"
)

// taxRate is the flat sales tax applied to every order.
var taxRate = decimal.RequireFromString("0.08")

// Summary is the point-of-sale view of an order. Amounts are formatted currency strings.
type Summary struct {
	UserID   int      `json:"user_id"`
	UserName string   `json:"user_name"`
	Subtotal string   `json:"subtotal"`
	Tax      string   `json:"tax"`
	Total    string   `json:"total"`
	Items    []string `json:"items"`
}

// ProcessOrder prices products for user. Total is taxed, unlike models.Order.Total,
// and is computed from the unrounded subtotal and tax.
func ProcessOrder(user models.User, products []models.Product) Summary {
	subtotal := shoputil.CalculateTotal(products)
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax)

	items := make([]string, 0, len(products))
	for _, p := range products {
		items = append(items, p.Name)
	}

	return Summary{
		UserID:   user.ID,
		UserName: user.Name,
		Subtotal: shoputil.FormatCurrency(subtotal),
		Tax:      shoputil.FormatCurrency(tax),
		Total:    shoputil.FormatCurrency(total),
		Items:    items,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("{user_id: %d, user_name: %q, subtotal: %q, tax: %q, total: %q, items: %q}",
		s.UserID, s.UserName, s.Subtotal, s.Tax, s.Total, s.Items)
}
