package helpdesk

import (
	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	"github.com/appmaster-hq/appmaster/internal/shared/biztime"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
)

type AddCommentRequest struct {
	Comment string `json:"comment" binding:"required,max=10000"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// parseListFilter reads the ticket list filters. Dates are YYYY-MM-DD in the
// business timezone; date_to covers its whole day.
func parseListFilter(c *gin.Context) (ticket.ListFilter, error) {
	f := ticket.ListFilter{
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		CategoryID: c.Query("category_id"),
		Assignee:   c.Query("assignee"),
		Search:     c.Query("search"),
	}

	if raw := c.Query("date_from"); raw != "" {
		d, err := biztime.ParseDate(raw)
		if err != nil {
			return f, errors.NewValidationError("invalid date_from, expected YYYY-MM-DD")
		}
		from := biztime.StartOfDayUTC(d)
		f.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		d, err := biztime.ParseDate(raw)
		if err != nil {
			return f, errors.NewValidationError("invalid date_to, expected YYYY-MM-DD")
		}
		to := biztime.EndOfDayUTC(d)
		f.DateTo = &to
	}
	return f, nil
}
