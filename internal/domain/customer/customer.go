package customer

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool { return s == StatusActive || s == StatusInactive }

type Customer struct {
	id        uint
	name      string
	email     string
	company   string
	phone     string
	value     float64
	status    Status
	createdAt time.Time
}

func NewCustomer(name, email, company, phone string, value float64, status Status, now time.Time) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid customer status: %s", status)
	}
	if value < 0 {
		return nil, fmt.Errorf("value cannot be negative")
	}
	return &Customer{
		name:      name,
		email:     email,
		company:   company,
		phone:     phone,
		value:     value,
		status:    status,
		createdAt: now,
	}, nil
}

func ReconstructCustomer(id uint, name, email, company, phone string, value float64, status Status, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		company:   company,
		phone:     phone,
		value:     value,
		status:    status,
		createdAt: createdAt,
	}
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Company() string      { return c.company }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Value() float64       { return c.value }
func (c *Customer) Status() Status       { return c.status }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) IsActive() bool       { return c.status == StatusActive }

func (c *Customer) SetID(id uint) { c.id = id }

// Matches reports whether term occurs, ignoring case, in the customer's
// name, company or email. An empty term matches every customer.
func (c *Customer) Matches(term string) bool {
	return MatchesTerm(term, c.name, c.company, c.email)
}

// MatchesTerm is the customer search rule over already loaded fields.
func MatchesTerm(term string, fields ...string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Search keeps the customers matching term, preserving order.
func Search(customers []*Customer, term string) []*Customer {
	out := make([]*Customer, 0, len(customers))
	for _, c := range customers {
		if c.Matches(term) {
			out = append(out, c)
		}
	}
	return out
}

// CountActive counts customers with status active.
func CountActive(customers []*Customer) int {
	n := 0
	for _, c := range customers {
		if c.IsActive() {
			n++
		}
	}
	return n
}
