package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/myplanner/backend/api/handler"
)

type Handlers struct {
	Auth     *apiHandler.AuthHandler
	Profile  *apiHandler.ProfileHandler
	List     *apiHandler.ListHandler
	Task     *apiHandler.TaskHandler
	Tag      *apiHandler.TagHandler
	Reminder *apiHandler.ReminderHandler
	Comment  *apiHandler.CommentHandler
	Event    *apiHandler.EventHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/register", handlers.Auth.Register)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", authMiddleware(handlers.Auth.Refresh))
	r.POST("/api/v1/auth/logout", authMiddleware(handlers.Auth.Logout))

	// Protected routes
	r.GET("/api/v1/profile", authMiddleware(handlers.Profile.GetProfile))
	r.PUT("/api/v1/profile", authMiddleware(handlers.Profile.UpdateProfile))

	r.GET("/api/v1/lists", authMiddleware(handlers.List.GetLists))
	r.POST("/api/v1/lists", authMiddleware(handlers.List.CreateList))
	r.GET("/api/v1/lists/{id}", authMiddleware(handlers.List.GetList))
	r.PUT("/api/v1/lists/{id}", authMiddleware(handlers.List.UpdateList))
	r.DELETE("/api/v1/lists/{id}", authMiddleware(handlers.List.DeleteList))

	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.CreateTask))
	r.GET("/api/v1/tasks/{id}", authMiddleware(handlers.Task.GetTask))
	r.PUT("/api/v1/tasks/{id}", authMiddleware(handlers.Task.UpdateTask))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))
	r.POST("/api/v1/tasks/{id}/toggle", authMiddleware(handlers.Task.ToggleTask))

	r.GET("/api/v1/tasks/{id}/comments", authMiddleware(handlers.Comment.GetComments))
	r.POST("/api/v1/tasks/{id}/comments", authMiddleware(handlers.Comment.CreateComment))
	r.DELETE("/api/v1/comments/{id}", authMiddleware(handlers.Comment.DeleteComment))

	r.GET("/api/v1/tags", authMiddleware(handlers.Tag.GetTags))
	r.POST("/api/v1/tags", authMiddleware(handlers.Tag.CreateTag))
	r.DELETE("/api/v1/tags", authMiddleware(handlers.Tag.BulkDeleteTags))
	r.GET("/api/v1/tags/{id}", authMiddleware(handlers.Tag.GetTag))
	r.PUT("/api/v1/tags/{id}", authMiddleware(handlers.Tag.UpdateTag))
	r.DELETE("/api/v1/tags/{id}", authMiddleware(handlers.Tag.DeleteTag))

	r.GET("/api/v1/reminders", authMiddleware(handlers.Reminder.GetReminders))
	r.POST("/api/v1/reminders", authMiddleware(handlers.Reminder.CreateReminder))
	r.GET("/api/v1/reminders/{id}", authMiddleware(handlers.Reminder.GetReminder))
	r.PUT("/api/v1/reminders/{id}", authMiddleware(handlers.Reminder.UpdateReminder))
	r.DELETE("/api/v1/reminders/{id}", authMiddleware(handlers.Reminder.DeleteReminder))

	r.GET("/api/v1/events", authMiddleware(handlers.Event.GetEvents))
	r.POST("/api/v1/events", authMiddleware(handlers.Event.CreateEvent))
	r.GET("/api/v1/events/{id}", authMiddleware(handlers.Event.GetEvent))
	r.PUT("/api/v1/events/{id}", authMiddleware(handlers.Event.UpdateEvent))
	r.DELETE("/api/v1/events/{id}", authMiddleware(handlers.Event.DeleteEvent))

	return r
}
