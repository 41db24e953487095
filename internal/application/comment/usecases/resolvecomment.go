package usecases

import (
	"context"
	"fmt"

	"github.com/campus-pulse/campuspulse/internal/domain/comment"
	"github.com/campus-pulse/campuspulse/internal/shared/biztime"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

type ResolveCommentCommand struct {
	CommentID uint
	Note      string
}

type ResolveCommentResult struct {
	Updated bool
}

type ResolveCommentUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewResolveCommentUseCase(commentRepo comment.Repository, logger logger.Interface) *ResolveCommentUseCase {
	return &ResolveCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute marks the comment resolved without reading it first. Resolving an
// already resolved comment overwrites the note and resolution time; an
// unknown id changes nothing and is not an error.
func (uc *ResolveCommentUseCase) Execute(ctx context.Context, cmd ResolveCommentCommand) (*ResolveCommentResult, error) {
	note := comment.NormalizeNote(cmd.Note)

	updated, err := uc.commentRepo.MarkResolved(ctx, cmd.CommentID, note, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to resolve comment", "comment_id", cmd.CommentID, "error", err)
		return nil, fmt.Errorf("failed to resolve comment: %w", err)
	}

	if !updated {
		uc.logger.Warnw("resolve matched no comment", "comment_id", cmd.CommentID)
	} else {
		uc.logger.Infow("comment resolved", "comment_id", cmd.CommentID, "has_note", note != nil)
	}

	return &ResolveCommentResult{Updated: updated}, nil
}
