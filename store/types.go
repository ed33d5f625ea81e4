// Package store holds the fixture domain types the engine tests copy. The
// types deliberately cover every structural shape: unique ids, enums,
// optional pointers, key-value maps, unique sets and nested lists.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/juju/collections/set"
)

// Product represents an individual item available for sale.
// Prices are kept in cents (lowest currency unit) to avoid floating-point errors.
type Product struct {
	ID         uuid.UUID
	SKU        string
	Name       string
	PriceCents int64
	Status     Status
	Labels     map[string]string
	Tags       set.Strings
	CreatedAt  time.Time
}

// Customer represents the user placing orders.
type Customer struct {
	ID       uuid.UUID
	Email    string
	FullName string
	Address  *Address // optional, absent for guest checkouts
	Nickname *string
	IsActive bool
}

// Address is a physical or billing address.
type Address struct {
	Street  string
	City    string
	Country string
}

// Order represents a transaction made by a customer.
type Order struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	Status      Status
	TotalCents  int64
	Items       []OrderItem // Has-Many relationship
	Quantities  map[uuid.UUID]int
	Tags        set.Strings
	OrderedAt   time.Time
	GracePeriod time.Duration
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice int64
}

// Status is a custom type for type-safe status handling.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusCancelled Status = "CANCELLED"
)
