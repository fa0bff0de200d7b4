package usecases

import (
	"context"

	"github.com/appmaster-hq/appmaster/internal/application/helpdesk/dto"
	"github.com/appmaster-hq/appmaster/internal/domain/ticket"
	"github.com/appmaster-hq/appmaster/internal/shared/errors"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/mapper"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
)

type ListProblemsUseCase struct {
	problemRepo ticket.ProblemRepository
	queries     query.Client
	logger      logger.Interface
}

func NewListProblemsUseCase(problemRepo ticket.ProblemRepository, queries query.Client, logger logger.Interface) *ListProblemsUseCase {
	return &ListProblemsUseCase{problemRepo: problemRepo, queries: queries, logger: logger}
}

func (uc *ListProblemsUseCase) Execute(ctx context.Context) ([]dto.ProblemDTO, error) {
	result, err := query.Get(ctx, uc.queries, query.ProblemsKey(), func(ctx context.Context) ([]dto.ProblemDTO, error) {
		problems, err := uc.problemRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		return mapper.MapSlice(problems, dto.ToProblemDTO), nil
	})
	if err != nil {
		uc.logger.Errorw("failed to list problems", "error", err)
		return nil, errors.NewInternalError("Failed to load problems", err.Error())
	}
	return emptyIfNil(result), nil
}
