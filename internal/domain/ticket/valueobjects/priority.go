package valueobjects

import "fmt"

type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var AllPriorities = []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}

var priorityColors = map[Priority]string{
	PriorityUrgent: "red",
	PriorityHigh:   "orange",
	PriorityMedium: "yellow",
	PriorityLow:    "green",
}

var prioritySLAHours = map[Priority]int{
	PriorityUrgent: 4,
	PriorityHigh:   8,
	PriorityMedium: 24,
	PriorityLow:    72,
}

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	_, ok := priorityColors[p]
	return ok
}

// Color is the badge colour hint; unknown priorities are gray.
func (p Priority) Color() string {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return "gray"
}

// SLAHours is the resolution target used when a ticket is opened.
func (p Priority) SLAHours() int {
	if h, ok := prioritySLAHours[p]; ok {
		return h
	}
	return 72
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
