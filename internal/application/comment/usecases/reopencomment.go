package usecases

import (
	"context"
	"fmt"

	"github.com/campus-pulse/campuspulse/internal/domain/comment"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

type ReopenCommentCommand struct {
	CommentID uint
}

type ReopenCommentResult struct {
	Updated bool
}

type ReopenCommentUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewReopenCommentUseCase(commentRepo comment.Repository, logger logger.Interface) *ReopenCommentUseCase {
	return &ReopenCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute reopens the comment and clears its resolution time. The lecturer
// note is kept.
func (uc *ReopenCommentUseCase) Execute(ctx context.Context, cmd ReopenCommentCommand) (*ReopenCommentResult, error) {
	updated, err := uc.commentRepo.MarkOpen(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to reopen comment", "comment_id", cmd.CommentID, "error", err)
		return nil, fmt.Errorf("failed to reopen comment: %w", err)
	}

	if !updated {
		uc.logger.Warnw("reopen matched no comment", "comment_id", cmd.CommentID)
	} else {
		uc.logger.Infow("comment reopened", "comment_id", cmd.CommentID)
	}

	return &ReopenCommentResult{Updated: updated}, nil
}
