// Package models provides shared data models for all Go services.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Status is set by callers; no transitions are enforced.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusCancelled = "cancelled"
)

// User represents a user in the system.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser returns a user created now.
func NewUser(id int, name, email string) User {
	return NewUserAt(id, name, email, time.Time{})
}

// NewUserAt returns a user with the given creation time, or now if createdAt is zero.
func NewUserAt(id int, name, email string, createdAt time.Time) User {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return User{ID: id, Name: name, Email: email, CreatedAt: createdAt}
}

// FullDisplay returns the user as "Name <email>".
func (u User) FullDisplay() string {
	return fmt.Sprintf("%s <%s>", u.Name, u.Email)
}

// Product represents a product in the catalog.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	InStock     bool            `json:"in_stock"`
}

// NewProduct returns an in-stock product with no description.
func NewProduct(id int, name string, price decimal.Decimal) Product {
	return Product{ID: id, Name: name, Price: price, InStock: true}
}

// DiscountedPrice returns the price reduced by percent.
// Percent is not clamped: values above 100 go negative, values below 0 inflate the price.
func (p Product) DiscountedPrice(percent float64) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100)))
	return p.Price.Mul(factor)
}

func (p Product) String() string {
	return fmt.Sprintf("%s ($%s)", p.Name, p.Price.StringFixed(2))
}

// Order represents an order in the system.
type Order struct {
	ID       int       `json:"id"`
	User     User      `json:"user"`
	Products []Product `json:"products"`
	Status   string    `json:"status"`
}

// NewOrder returns a pending order for the given products.
func NewOrder(id int, user User, products []Product) Order {
	return Order{ID: id, User: user, Products: products, Status: StatusPending}
}

// Total is the untaxed sum of product prices.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Price)
	}
	return total
}
