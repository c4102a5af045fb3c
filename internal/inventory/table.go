package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"stock-tracker/internal/audit"
	"stock-tracker/internal/interfaces"
	"stock-tracker/internal/models"
)

// DefaultLowStockThreshold is the cutoff used when the caller does not
// supply one.
const DefaultLowStockThreshold = 5

// Table tracks stock levels per item name. It has a single owner and no
// locking discipline; all operations run to completion synchronously.
// Insertion order is preserved so reports and scans are deterministic.
type Table struct {
	stock map[string]int
	order []string
}

// NewTable creates an empty stock table
func NewTable() *Table {
	return &Table{stock: make(map[string]int)}
}

// Add increases an item's stock by qty, creating the entry if absent. The
// optional sink receives one entry describing the mutation; a nil sink means
// no logging.
func (t *Table) Add(item string, qty int, sink interfaces.AuditSink) error {
	if strings.TrimSpace(item) == "" {
		return &models.ValueError{Field: "item", Message: "item name cannot be empty", Value: item}
	}
	if qty < 0 {
		return &models.ValueError{Field: "qty", Message: fmt.Sprintf("quantity cannot be negative, got %d", qty), Value: qty}
	}

	if _, exists := t.stock[item]; !exists {
		t.order = append(t.order, item)
	}
	t.stock[item] += qty

	log.Debug().
		Str("item", item).
		Int("qty", qty).
		Int("total", t.stock[item]).
		Msg("Stock added")

	if sink != nil {
		sink.Append(audit.Entry("Added", qty, item))
	}

	return nil
}

// AddValue is the dynamic boundary of Add for values arriving from untyped
// sources (decoded JSON, generic containers). Validation order: item type,
// item value, quantity type, quantity value.
func (t *Table) AddValue(item, qty any, sink interfaces.AuditSink) error {
	name, ok := item.(string)
	if !ok {
		return &models.TypeError{Field: "item", Expected: "a string", Got: fmt.Sprintf("%T", item)}
	}
	if strings.TrimSpace(name) == "" {
		return &models.ValueError{Field: "item", Message: "item name cannot be empty", Value: name}
	}
	n, err := intValue(qty)
	if err != nil {
		return err
	}
	return t.Add(name, n, sink)
}

// intValue coerces a dynamically typed quantity to int. Floats are rejected
// even when integral: JSON numbers decode to float64 and the contract
// requires whole numbers to be stated as such.
func intValue(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	default:
		return 0, &models.TypeError{Field: "qty", Expected: "an integer", Got: fmt.Sprintf("%T", v)}
	}
}

// Remove decreases an item's stock by qty. An item whose stock reaches zero
// or below is deleted outright; the table never stores zero or negative
// quantities through this path.
func (t *Table) Remove(item string, qty int) error {
	if qty < 0 {
		return &models.ValueError{Field: "qty", Message: "quantity must be a non-negative integer", Value: qty}
	}

	current, exists := t.stock[item]
	if !exists {
		return &models.NotFoundError{Item: item}
	}

	remaining := current - qty
	if remaining <= 0 {
		delete(t.stock, item)
		t.dropKey(item)
		log.Debug().Str("item", item).Msg("Stock depleted, item removed")
		return nil
	}

	t.stock[item] = remaining
	log.Debug().
		Str("item", item).
		Int("qty", qty).
		Int("remaining", remaining).
		Msg("Stock removed")

	return nil
}

// Quantity returns the current stock of an item
func (t *Table) Quantity(item string) (int, error) {
	qty, exists := t.stock[item]
	if !exists {
		return 0, &models.NotFoundError{Item: item}
	}
	return qty, nil
}

// LowStock returns the names of items with stock strictly below threshold,
// in table order.
func (t *Table) LowStock(threshold int) []string {
	result := []string{}
	for _, item := range t.order {
		if t.stock[item] < threshold {
			result = append(result, item)
		}
	}
	return result
}

// Len returns the number of items currently tracked
func (t *Table) Len() int {
	return len(t.stock)
}

// Snapshot returns a copy of the current stock mapping for persistence
func (t *Table) Snapshot() map[string]int {
	out := make(map[string]int, len(t.stock))
	for item, qty := range t.stock {
		out[item] = qty
	}
	return out
}

// Replace swaps the table contents wholesale, as after a snapshot load.
// Keys are ordered lexicographically since the snapshot carries no order.
func (t *Table) Replace(stock map[string]int) {
	t.stock = make(map[string]int, len(stock))
	t.order = make([]string, 0, len(stock))
	for item, qty := range stock {
		t.stock[item] = qty
		t.order = append(t.order, item)
	}
	sort.Strings(t.order)
}

// Report renders the fixed-format items report
func (t *Table) Report() string {
	var b strings.Builder
	b.WriteString("=== Items Report ===\n")
	if len(t.stock) == 0 {
		b.WriteString("Inventory is empty\n")
	} else {
		for _, item := range t.order {
			fmt.Fprintf(&b, "%s -> %d\n", item, t.stock[item])
		}
	}
	b.WriteString("====================\n")
	return b.String()
}

func (t *Table) dropKey(item string) {
	for i, key := range t.order {
		if key == item {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}
