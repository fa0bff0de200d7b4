// Package dto holds the CRM page view models.
package dto

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/appmaster-hq/appmaster/internal/domain/customer"
	"github.com/appmaster-hq/appmaster/internal/domain/deal"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

var titleCaser = cases.Title(language.English)

type CustomerDTO struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Company    string  `json:"company"`
	Phone      string  `json:"phone"`
	Value      float64 `json:"value"`
	ValueLabel string  `json:"value_label"`
	Status     string  `json:"status"`
}

func ToCustomerDTO(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:         c.ID(),
		Name:       c.Name(),
		Email:      c.Email(),
		Company:    c.Company(),
		Phone:      c.Phone(),
		Value:      c.Value(),
		ValueLabel: utils.FormatThousandsUSD(c.Value()),
		Status:     string(c.Status()),
	}
}

// Matches applies the customer search rule to a cached row.
func (d CustomerDTO) Matches(term string) bool {
	return customer.MatchesTerm(term, d.Name, d.Company, d.Email)
}

type CustomerListDTO struct {
	Customers []CustomerDTO `json:"customers"`
	Count     int           `json:"count"`
	Search    string        `json:"search,omitempty"`
}

type DealDTO struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Customer    string  `json:"customer"`
	Value       float64 `json:"value"`
	ValueLabel  string  `json:"value_label"`
	Stage       string  `json:"stage"`
	StageLabel  string  `json:"stage_label"`
	Probability int     `json:"probability"`
	CloseDate   string  `json:"close_date"`
}

func ToDealDTO(d *deal.Deal) DealDTO {
	return DealDTO{
		ID:          d.ID(),
		Title:       d.Title(),
		Customer:    d.CustomerName(),
		Value:       d.Value(),
		ValueLabel:  utils.FormatThousandsUSD(d.Value()),
		Stage:       string(d.Stage()),
		StageLabel:  StageLabel(d.Stage()),
		Probability: d.Probability(),
		CloseDate:   d.CloseDate(),
	}
}

func StageLabel(s deal.Stage) string {
	return titleCaser.String(string(s))
}

type DealColumnDTO struct {
	Stage      string    `json:"stage"`
	Label      string    `json:"label"`
	Count      int       `json:"count"`
	Total      float64   `json:"total"`
	TotalLabel string    `json:"total_label"`
	Deals      []DealDTO `json:"deals"`
}

type DealsBoardDTO struct {
	Columns []DealColumnDTO `json:"columns"`
}

func ToDealsBoardDTO(cols []deal.Column) DealsBoardDTO {
	out := DealsBoardDTO{Columns: make([]DealColumnDTO, 0, len(cols))}
	for _, col := range cols {
		deals := make([]DealDTO, 0, len(col.Deals))
		for _, d := range col.Deals {
			deals = append(deals, ToDealDTO(d))
		}
		out.Columns = append(out.Columns, DealColumnDTO{
			Stage:      string(col.Stage),
			Label:      StageLabel(col.Stage),
			Count:      len(deals),
			Total:      col.Total,
			TotalLabel: utils.FormatThousandsUSD(col.Total),
			Deals:      deals,
		})
	}
	return out
}

// StatCardDTO is one headline figure on the dashboard.
type StatCardDTO struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type DashboardDTO struct {
	Stats           []StatCardDTO `json:"stats"`
	TotalRevenue    float64       `json:"total_revenue"`
	ActiveCustomers int           `json:"active_customers"`
	TotalCustomers  int           `json:"total_customers"`
	OpenDeals       int           `json:"open_deals"`
	PipelineValue   float64       `json:"pipeline_value"`
	RecentCustomers []CustomerDTO `json:"recent_customers"`
	ActiveDeals     []DealDTO     `json:"active_deals"`
}
