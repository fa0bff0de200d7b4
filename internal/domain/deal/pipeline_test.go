package deal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDeals() []*Deal {
	at := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	return []*Deal{
		ReconstructDeal(1, "Enterprise Software License", "Acme Corporation", 125000, StageProposal, 75, "2025-01-15", at),
		ReconstructDeal(2, "Cloud Infrastructure Setup", "TechStart Inc", 85000, StageQualified, 60, "2025-01-30", at),
		ReconstructDeal(3, "Annual Support Contract", "Global Ventures", 210000, StageWon, 100, "2024-12-20", at),
		ReconstructDeal(4, "Consulting Services", "InnovatePlus", 45000, StageLead, 25, "2025-02-15", at),
		ReconstructDeal(5, "Custom Development Project", "Future Systems", 175000, StageProposal, 70, "2025-01-25", at),
	}
}

func TestTotalRevenue(t *testing.T) {
	assert.Equal(t, 210000.0, TotalRevenue(sampleDeals()))
}

func TestPipelineValue(t *testing.T) {
	assert.Equal(t, 430000.0, PipelineValue(sampleDeals()))

	lost := ReconstructDeal(6, "Data Migration", "Acme Corporation", 99000, StageLost, 0, "2025-03-01", time.Time{})
	assert.Equal(t, 430000.0, PipelineValue(append(sampleDeals(), lost)))
}

func TestOpen(t *testing.T) {
	open := Open(sampleDeals())
	require.Len(t, open, 4)
	for _, d := range open {
		assert.NotEqual(t, StageWon, d.Stage())
	}
}

func TestBoard(t *testing.T) {
	lost := ReconstructDeal(6, "Data Migration", "Acme Corporation", 99000, StageLost, 0, "2025-03-01", time.Time{})
	cols := Board(append(sampleDeals(), lost))

	require.Len(t, cols, 4)
	want := []struct {
		stage Stage
		count int
		total float64
	}{
		{StageLead, 1, 45000},
		{StageQualified, 1, 85000},
		{StageProposal, 2, 300000},
		{StageWon, 1, 210000},
	}
	for i, w := range want {
		assert.Equal(t, w.stage, cols[i].Stage)
		assert.Len(t, cols[i].Deals, w.count)
		assert.Equal(t, w.total, cols[i].Total)
	}
}

func TestNewDeal_Validation(t *testing.T) {
	now := time.Now()
	_, err := NewDeal("Renewal", "Acme Corporation", 1000, StageLead, 101, "2025-01-01", now)
	assert.Error(t, err)
	_, err = NewDeal("Renewal", "Acme Corporation", 1000, Stage("negotiation"), 10, "2025-01-01", now)
	assert.Error(t, err)
	_, err = NewDeal("Renewal", "Acme Corporation", 1000, StageLead, 10, "01/01/2025", now)
	assert.Error(t, err)
	_, err = NewDeal("Renewal", "Acme Corporation", 1000, StageLead, 10, "2025-01-01", now)
	assert.NoError(t, err)
}
