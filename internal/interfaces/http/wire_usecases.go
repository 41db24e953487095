package http

import (
	commentUsecases "github.com/campus-pulse/campuspulse/internal/application/comment/usecases"
	courseUsecases "github.com/campus-pulse/campuspulse/internal/application/course/usecases"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Course
	createCourseUC    *courseUsecases.CreateCourseUseCase
	listCoursesUC     *courseUsecases.ListCoursesUseCase
	getCourseByCodeUC *courseUsecases.GetCourseByCodeUseCase
	getCourseByIDUC   *courseUsecases.GetCourseByIDUseCase

	// Comment
	submitCommentUC  *commentUsecases.SubmitCommentUseCase
	listCommentsUC   *commentUsecases.ListCommentsUseCase
	resolveCommentUC *commentUsecases.ResolveCommentUseCase
	reopenCommentUC  *commentUsecases.ReopenCommentUseCase
}

func newUseCases(repos *repositories, log logger.Interface) *allUseCases {
	return &allUseCases{
		createCourseUC:    courseUsecases.NewCreateCourseUseCase(repos.courseRepo, log),
		listCoursesUC:     courseUsecases.NewListCoursesUseCase(repos.courseRepo, log),
		getCourseByCodeUC: courseUsecases.NewGetCourseByCodeUseCase(repos.courseRepo, log),
		getCourseByIDUC:   courseUsecases.NewGetCourseByIDUseCase(repos.courseRepo, log),

		submitCommentUC:  commentUsecases.NewSubmitCommentUseCase(repos.commentRepo, log),
		listCommentsUC:   commentUsecases.NewListCommentsUseCase(repos.commentRepo, log),
		resolveCommentUC: commentUsecases.NewResolveCommentUseCase(repos.commentRepo, log),
		reopenCommentUC:  commentUsecases.NewReopenCommentUseCase(repos.commentRepo, log),
	}
}
