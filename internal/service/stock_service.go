package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"stock-tracker/internal/interfaces"
	"stock-tracker/internal/inventory"
	"stock-tracker/internal/models"
)

// StockService owns the inventory table and coordinates request validation,
// persistence and audit logging
type StockService struct {
	table    *inventory.Table
	store    interfaces.SnapshotStore
	config   ServiceConfig
	validate *validator.Validate
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	SnapshotPath      string
	LowStockThreshold int
}

// Validate validates the service configuration
func (c ServiceConfig) Validate() error {
	if c.SnapshotPath == "" {
		return fmt.Errorf("snapshot path must not be empty")
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("low stock threshold must be non-negative, got %d", c.LowStockThreshold)
	}
	return nil
}

// NewStockService creates a new stock service with dependency injection and validation
func NewStockService(store interfaces.SnapshotStore, config ServiceConfig) (*StockService, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid service configuration: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("snapshot store is required")
	}

	return &StockService{
		table:    inventory.NewTable(),
		store:    store,
		config:   config,
		validate: validator.New(),
	}, nil
}

// AddStock validates the request and adds stock to the table. The optional
// sink receives one audit entry on success.
func (s *StockService) AddStock(req *models.AdjustStockRequest, sink interfaces.AuditSink) error {
	if err := s.validateRequest(req); err != nil {
		return err
	}
	return s.table.Add(req.Item, req.Qty, sink)
}

// AddStockValue adds stock from a dynamically typed source, preserving the
// type-mismatch / invalid-value distinction for untyped boundaries.
func (s *StockService) AddStockValue(item, qty any, sink interfaces.AuditSink) error {
	return s.table.AddValue(item, qty, sink)
}

// RemoveStock validates the request and removes stock from the table
func (s *StockService) RemoveStock(req *models.AdjustStockRequest) error {
	if err := s.validateRequest(req); err != nil {
		return err
	}
	return s.table.Remove(req.Item, req.Qty)
}

// GetQuantity returns the current stock of an item
func (s *StockService) GetQuantity(item string) (int, error) {
	return s.table.Quantity(item)
}

// LowStock returns items below the configured low-stock threshold
func (s *StockService) LowStock() []string {
	return s.table.LowStock(s.config.LowStockThreshold)
}

// LowStockBelow returns items below an explicit threshold
func (s *StockService) LowStockBelow(threshold int) []string {
	return s.table.LowStock(threshold)
}

// Report renders the items report
func (s *StockService) Report() string {
	return s.table.Report()
}

// Save persists the full table. An empty path means the configured snapshot
// path. The in-memory table is never changed by a save, failed or not.
func (s *StockService) Save(path string) error {
	if path == "" {
		path = s.config.SnapshotPath
	}
	return s.store.Write(path, s.table.Snapshot())
}

// Load replaces the table wholesale from a snapshot. On any read or parse
// failure the prior table state is kept untouched.
func (s *StockService) Load(path string) error {
	if path == "" {
		path = s.config.SnapshotPath
	}

	stock, err := s.store.Read(path)
	if err != nil {
		return err
	}

	s.table.Replace(stock)
	log.Info().Str("path", path).Int("items", s.table.Len()).Msg("Inventory loaded")
	return nil
}

// validateRequest maps struct-tag violations onto the invalid-value kind so
// callers see the same taxonomy for every boundary.
func (s *StockService) validateRequest(req *models.AdjustStockRequest) error {
	if req == nil {
		return &models.ValueError{Field: "request", Message: "request is required"}
	}

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return &models.ValueError{
				Field:   strings.ToLower(first.Field()),
				Message: fmt.Sprintf("failed validation on '%s'", first.Tag()),
				Value:   first.Value(),
			}
		}
		return fmt.Errorf("request validation failed: %w", err)
	}

	return nil
}
