package usecases

import (
	"context"
	"fmt"

	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	"github.com/appmaster-hq/appmaster/internal/domain/user"
)

// nameResolver turns the user and category IDs on helpdesk rows into the
// names the pages show.
type nameResolver struct {
	userRepo     user.Repository
	categoryRepo ticket.CategoryRepository
}

func (r nameResolver) userNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return names, nil
	}
	users, err := r.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range users {
		names[u.ID()] = u.Name()
	}
	return names, nil
}

func (r nameResolver) categoryNames(ctx context.Context) (map[uint]string, error) {
	categories, err := r.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

// ticketUserIDs collects requester and assignee IDs.
func ticketUserIDs(tickets ...*ticket.Ticket) []uint {
	var ids []uint
	for _, t := range tickets {
		if id := t.RequesterID(); id != nil {
			ids = append(ids, *id)
		}
		if id := t.AssigneeID(); id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
