package sim

import "fmt"

// StoreConfig describes the checkout lines a Store opens with.
// Lines are built in the fixed order Cashier*, Express*, SelfServe*, and a
// line's LineID is its position in that order.
type StoreConfig struct {
	CashierCount   int `yaml:"cashier_count"`    // number of Cashier lines
	ExpressCount   int `yaml:"express_count"`    // number of Express lines
	SelfServeCount int `yaml:"self_serve_count"` // number of SelfServe lines
	LineCapacity   int `yaml:"line_capacity"`    // max customers queued in any one line
}

// NewStoreConfig creates a StoreConfig with all fields explicitly set.
func NewStoreConfig(cashiers, express, selfServe, capacity int) StoreConfig {
	return StoreConfig{
		CashierCount:   cashiers,
		ExpressCount:   express,
		SelfServeCount: selfServe,
		LineCapacity:   capacity,
	}
}

// TotalLines returns the number of lines the store opens with.
func (c StoreConfig) TotalLines() int {
	return c.CashierCount + c.ExpressCount + c.SelfServeCount
}

// Validate checks that counts are non-negative, at least one line exists,
// and the capacity admits at least one customer.
func (c StoreConfig) Validate() error {
	if c.CashierCount < 0 {
		return fmt.Errorf("cashier_count must be >= 0, got %d", c.CashierCount)
	}
	if c.ExpressCount < 0 {
		return fmt.Errorf("express_count must be >= 0, got %d", c.ExpressCount)
	}
	if c.SelfServeCount < 0 {
		return fmt.Errorf("self_serve_count must be >= 0, got %d", c.SelfServeCount)
	}
	if c.TotalLines() == 0 {
		return fmt.Errorf("store must have at least one checkout line")
	}
	if c.LineCapacity <= 0 {
		return fmt.Errorf("line_capacity must be > 0, got %d", c.LineCapacity)
	}
	return nil
}
