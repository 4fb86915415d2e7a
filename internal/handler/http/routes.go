package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)

	// read routes
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)

		r.Get("/api/messages/{id}", h.getMessage)
		r.Get("/api/conversations", h.getConversation)
		r.Get("/api/conversations/latest", h.getLatestConversations)

		r.Get("/api/posts/shares/{id}", h.getPostShare)
		r.Get("/api/groups/{id}/feed", h.getGroupFeed)

		r.Get("/api/transactions", h.getTransaction)
		r.Get("/api/users/{id}/transactions", h.getUserHistory)

		r.Get("/api/media/{id}", h.downloadMedia)
	})

	// mutating routes carry a transport integrity hash over the body
	router.Group(func(r chi.Router) {
		r.Use(h.withBodyIntegrity)

		r.Post("/api/messages", h.sendMessage)
		r.Put("/api/messages/{id}", h.editMessage)
		r.Delete("/api/messages/{id}", h.deleteMessage)

		r.Post("/api/posts/shares", h.sharePost)

		r.Post("/api/transactions", h.recordTransaction)

		r.Post("/api/media", h.uploadMedia)
		r.Delete("/api/media/{id}", h.deleteMedia)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
