package deal

// TotalRevenue sums the value of won deals.
func TotalRevenue(deals []*Deal) float64 {
	var total float64
	for _, d := range deals {
		if d.stage == StageWon {
			total += d.value
		}
	}
	return total
}

// PipelineValue sums the value of deals that are neither won nor lost.
func PipelineValue(deals []*Deal) float64 {
	var total float64
	for _, d := range deals {
		if d.IsOpen() {
			total += d.value
		}
	}
	return total
}

// Open keeps the open deals, preserving order.
func Open(deals []*Deal) []*Deal {
	out := make([]*Deal, 0, len(deals))
	for _, d := range deals {
		if d.IsOpen() {
			out = append(out, d)
		}
	}
	return out
}

// Column is one stage of the pipeline board.
type Column struct {
	Stage Stage
	Deals []*Deal
	Total float64
}

// Board groups deals into BoardStages columns in deal order.
func Board(deals []*Deal) []Column {
	cols := make([]Column, len(BoardStages))
	index := make(map[Stage]int, len(BoardStages))
	for i, s := range BoardStages {
		cols[i] = Column{Stage: s, Deals: []*Deal{}}
		index[s] = i
	}
	for _, d := range deals {
		i, ok := index[d.stage]
		if !ok {
			continue
		}
		cols[i].Deals = append(cols[i].Deals, d)
		cols[i].Total += d.value
	}
	return cols
}
