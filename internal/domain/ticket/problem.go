package ticket

import (
	"time"

	vo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
)

// Problem groups tickets that share a root cause.
type Problem struct {
	id              uint
	number          string
	title           string
	description     string
	status          string
	priority        vo.Priority
	linkedTicketIDs []uint
	createdAt       time.Time
}

func ReconstructProblem(
	id uint,
	number, title, description, status string,
	priority vo.Priority,
	linkedTicketIDs []uint,
	createdAt time.Time,
) *Problem {
	return &Problem{
		id:              id,
		number:          number,
		title:           title,
		description:     description,
		status:          status,
		priority:        priority,
		linkedTicketIDs: linkedTicketIDs,
		createdAt:       createdAt,
	}
}

func (p *Problem) ID() uint                { return p.id }
func (p *Problem) Number() string          { return p.number }
func (p *Problem) Title() string           { return p.title }
func (p *Problem) Description() string     { return p.description }
func (p *Problem) Status() string          { return p.status }
func (p *Problem) Priority() vo.Priority   { return p.priority }
func (p *Problem) LinkedTicketIDs() []uint { return append([]uint(nil), p.linkedTicketIDs...) }
func (p *Problem) CreatedAt() time.Time    { return p.createdAt }

type Category struct {
	ID   uint
	Name string
}
