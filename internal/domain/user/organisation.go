package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Organisation struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func NewOrganisation(name string, now time.Time) (*Organisation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("organisation name is required")
	}
	return &Organisation{ID: uuid.NewString(), Name: name, CreatedAt: now}, nil
}
