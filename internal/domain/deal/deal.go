package deal

import (
	"fmt"
	"strings"
	"time"
)

type Stage string

const (
	StageLead      Stage = "lead"
	StageQualified Stage = "qualified"
	StageProposal  Stage = "proposal"
	StageWon       Stage = "won"
	StageLost      Stage = "lost"
)

// BoardStages are the pipeline board columns, left to right. Lost deals
// have no column.
var BoardStages = []Stage{StageLead, StageQualified, StageProposal, StageWon}

func (s Stage) IsValid() bool {
	switch s {
	case StageLead, StageQualified, StageProposal, StageWon, StageLost:
		return true
	}
	return false
}

// IsOpen reports a deal still in the pipeline.
func (s Stage) IsOpen() bool { return s.IsValid() && s != StageWon && s != StageLost }

type Deal struct {
	id           uint
	title        string
	customerName string
	value        float64
	stage        Stage
	probability  int
	closeDate    string
	createdAt    time.Time
}

// NewDeal validates a deal. closeDate is a YYYY-MM-DD date.
func NewDeal(title, customerName string, value float64, stage Stage, probability int, closeDate string, now time.Time) (*Deal, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid deal stage: %s", stage)
	}
	if probability < 0 || probability > 100 {
		return nil, fmt.Errorf("probability must be between 0 and 100")
	}
	if _, err := time.Parse(time.DateOnly, closeDate); err != nil {
		return nil, fmt.Errorf("close date must be YYYY-MM-DD: %w", err)
	}
	return &Deal{
		title:        title,
		customerName: customerName,
		value:        value,
		stage:        stage,
		probability:  probability,
		closeDate:    closeDate,
		createdAt:    now,
	}, nil
}

func ReconstructDeal(id uint, title, customerName string, value float64, stage Stage, probability int, closeDate string, createdAt time.Time) *Deal {
	return &Deal{
		id:           id,
		title:        title,
		customerName: customerName,
		value:        value,
		stage:        stage,
		probability:  probability,
		closeDate:    closeDate,
		createdAt:    createdAt,
	}
}

func (d *Deal) ID() uint             { return d.id }
func (d *Deal) Title() string        { return d.title }
func (d *Deal) CustomerName() string { return d.customerName }
func (d *Deal) Value() float64       { return d.value }
func (d *Deal) Stage() Stage         { return d.stage }
func (d *Deal) Probability() int     { return d.probability }
func (d *Deal) CloseDate() string    { return d.closeDate }
func (d *Deal) CreatedAt() time.Time { return d.createdAt }
func (d *Deal) IsOpen() bool         { return d.stage.IsOpen() }

func (d *Deal) SetID(id uint) { d.id = id }
