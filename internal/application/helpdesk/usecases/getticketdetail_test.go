package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	vo "github.com/appmaster-hq/appmaster/internal/domain/ticket/valueobjects"
	apperrors "github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/query/querytest"
	"github.com/appmaster-hq/appmaster/internal/shared/services/markdown"
)

type detailFixture struct {
	tickets     *mockTicketRepository
	comments    *mockCommentRepository
	history     *mockHistoryRepository
	attachments *mockAttachmentRepository
	problems    *mockProblemRepository
	categories  *mockCategoryRepository
	users       *mockUserRepository
	queries     *querytest.Recorder
}

func newDetailFixture() *detailFixture {
	return &detailFixture{
		tickets: &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				if id != 1 {
					return nil, nil
				}
				return newTestTicket(1, vo.StatusInProgress, vo.PriorityUrgent), nil
			},
		},
		comments: &mockCommentRepository{
			ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
				return []*ticket.Comment{
					ticket.ReconstructComment(1, ticketID, 10, "First look", false, nil, baseTime),
					ticket.ReconstructComment(2, ticketID, 404, "From a deleted user", false, nil, baseTime.Add(1)),
				}, nil
			},
		},
		history: &mockHistoryRepository{
			ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
				return []*ticket.HistoryEntry{
					ticket.NewFieldChange(ticketID, uintPtr(20), "status", "open", "in_progress", baseTime.Add(2)),
					ticket.NewFieldChange(ticketID, nil, "priority", "high", "urgent", baseTime.Add(1)),
				}, nil
			},
		},
		attachments: &mockAttachmentRepository{
			ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
				return []*ticket.Attachment{
					ticket.ReconstructAttachment(1, ticketID, "error.png", "https://files.example.com/error.png", uintPtr(10), baseTime),
				}, nil
			},
		},
		problems: &mockProblemRepository{
			ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Problem, error) {
				return []*ticket.Problem{
					ticket.ReconstructProblem(1, "PRB-001", "Print server outage", "", "investigating", vo.PriorityHigh, []uint{ticketID}, baseTime),
				}, nil
			},
		},
		categories: &mockCategoryRepository{
			ListFunc: func(ctx context.Context) ([]*ticket.Category, error) {
				return []*ticket.Category{{ID: 1, Name: "Hardware"}}, nil
			},
		},
		users:   &mockUserRepository{Users: map[uint]string{10: "Rita Requester", 20: "Aaron Assignee"}},
		queries: querytest.NewRecorder(),
	}
}

func (f *detailFixture) useCase() *GetTicketDetailUseCase {
	log := logger.NewNop()
	renderer := markdown.NewRenderer()
	return NewGetTicketDetailUseCase(
		NewGetTicketUseCase(f.tickets, f.categories, f.users, renderer, f.queries, log),
		NewListCommentsUseCase(f.comments, f.users, renderer, f.queries, log),
		NewListHistoryUseCase(f.history, f.users, f.queries, log),
		NewListAttachmentsUseCase(f.attachments, f.users, f.queries, log),
		NewListLinkedProblemsUseCase(f.problems, f.queries, log),
		log,
	)
}

func TestGetTicketDetailUseCase_Execute_AllPanelsReady(t *testing.T) {
	f := newDetailFixture()

	detail, err := f.useCase().Execute(context.Background(), 1)
	require.NoError(t, err)

	require.Equal(t, dto.PanelReady, detail.Ticket.State)
	tk := detail.Ticket.Data
	assert.Equal(t, "TKT-1001", tk.Number)
	assert.Equal(t, "In Progress", tk.StatusLabel)
	assert.Equal(t, "red", tk.PriorityColor)
	assert.Equal(t, "Hardware", tk.CategoryName)
	assert.Equal(t, "Rita Requester", tk.RequesterName)
	assert.Equal(t, "Aaron Assignee", tk.AssigneeName)
	assert.Contains(t, tk.DescriptionHTML, "<strong>3rd floor</strong>")

	require.Equal(t, dto.PanelReady, detail.Comments.State)
	require.Len(t, detail.Comments.Data, 2)
	assert.Equal(t, "Rita Requester", detail.Comments.Data[0].AuthorName)
	assert.Equal(t, "Unknown", detail.Comments.Data[1].AuthorName)

	require.Equal(t, dto.PanelReady, detail.History.State)
	require.Len(t, detail.History.Data, 2)
	assert.Equal(t, "Aaron Assignee", detail.History.Data[0].UserName)
	assert.Equal(t, "System", detail.History.Data[1].UserName)

	require.Equal(t, dto.PanelReady, detail.Attachments.State)
	assert.Equal(t, "Rita Requester", detail.Attachments.Data[0].UploaderName)

	require.Equal(t, dto.PanelReady, detail.Problems.State)
	assert.Equal(t, "PRB-001", detail.Problems.Data[0].Number)

	assert.Len(t, detail.StatusOptions, len(vo.AllStatuses))
	assert.ElementsMatch(t, []query.Key{
		query.TicketKey(1),
		query.TicketCommentsKey(1),
		query.TicketHistoryKey(1),
		query.TicketAttachmentsKey(1),
		query.TicketProblemsKey(1),
	}, f.queries.Fetched())
}

func TestGetTicketDetailUseCase_Execute_PartialFailure(t *testing.T) {
	f := newDetailFixture()
	f.history.ListByTicketFunc = func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
		return nil, errors.New("history table unavailable")
	}

	detail, err := f.useCase().Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, dto.PanelError, detail.History.State)
	assert.Equal(t, "Failed to load history", detail.History.Error)
	assert.Equal(t, dto.PanelReady, detail.Ticket.State)
	assert.Equal(t, dto.PanelReady, detail.Comments.State)
	assert.Equal(t, dto.PanelReady, detail.Attachments.State)
	assert.Equal(t, dto.PanelReady, detail.Problems.State)
}

func TestGetTicketDetailUseCase_Execute_TicketNotFound(t *testing.T) {
	f := newDetailFixture()

	_, err := f.useCase().Execute(context.Background(), 2)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Equal(t, "Ticket not found", apperrors.GetAppError(err).Message)
}
