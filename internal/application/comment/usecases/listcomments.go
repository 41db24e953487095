package usecases

import (
	"context"
	"fmt"

	"github.com/campus-pulse/campuspulse/internal/application/comment/dto"
	"github.com/campus-pulse/campuspulse/internal/domain/comment"
	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

// PollLimit caps the polling endpoint's comment list.
const PollLimit = 100

type ListCommentsQuery struct {
	CourseID uint
	Status   string
	// Limit <= 0 returns every matching comment.
	Limit int
}

type ListCommentsResult struct {
	Filter   vo.Filter
	Comments []*dto.CommentDTO
}

type ListCommentsUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewListCommentsUseCase(commentRepo comment.Repository, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	filter := vo.ParseFilter(query.Status)

	comments, err := uc.commentRepo.ListByCourse(ctx, query.CourseID, filter, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list comments",
			"course_id", query.CourseID,
			"filter", filter,
			"error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return &ListCommentsResult{
		Filter:   filter,
		Comments: dto.ToCommentDTOList(comments),
	}, nil
}
