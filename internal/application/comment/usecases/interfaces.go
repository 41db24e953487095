package usecases

import (
	"context"
)

type SubmitCommentExecutor interface {
	Execute(ctx context.Context, cmd SubmitCommentCommand) (*SubmitCommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error)
}

type ResolveCommentExecutor interface {
	Execute(ctx context.Context, cmd ResolveCommentCommand) (*ResolveCommentResult, error)
}

type ReopenCommentExecutor interface {
	Execute(ctx context.Context, cmd ReopenCommentCommand) (*ReopenCommentResult, error)
}
