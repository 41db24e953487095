package http

import (
	apiHandlers "github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/api"
	lecturerHandlers "github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/lecturer"
	pageHandlers "github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/pages"
	studentHandlers "github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/student"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	pagesHandler    *pageHandlers.PagesHandler
	studentHandler  *studentHandlers.StudentHandler
	lecturerHandler *lecturerHandlers.LecturerHandler
	apiHandler      *apiHandlers.APIHandler
}
