package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-pulse/campuspulse/internal/application/comment/dto"
	"github.com/campus-pulse/campuspulse/internal/domain/comment"
	apperrors "github.com/campus-pulse/campuspulse/internal/shared/errors"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

type SubmitCommentCommand struct {
	CourseID    uint
	Content     string
	DisplayName *string
	Anonymous   bool
}

type SubmitCommentResult struct {
	Comment *dto.CommentDTO
}

type SubmitCommentUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewSubmitCommentUseCase(commentRepo comment.Repository, logger logger.Interface) *SubmitCommentUseCase {
	return &SubmitCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *SubmitCommentUseCase) Execute(ctx context.Context, cmd SubmitCommentCommand) (*SubmitCommentResult, error) {
	c, err := comment.NewComment(cmd.CourseID, cmd.Content, cmd.DisplayName, cmd.Anonymous)
	if err != nil {
		if errors.Is(err, comment.ErrContentRequired) {
			return nil, apperrors.NewValidationError("Comment cannot be empty.")
		}
		return nil, apperrors.NewValidationError("Invalid comment.", err.Error())
	}

	if err := uc.commentRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to save comment", "course_id", cmd.CourseID, "error", err)
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	uc.logger.Infow("comment submitted",
		"comment_id", c.ID(),
		"course_id", c.CourseID(),
		"anonymous", c.IsAnonymous())

	return &SubmitCommentResult{Comment: dto.ToCommentDTO(c)}, nil
}
