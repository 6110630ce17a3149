package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rohits-web03/chainnotes/docs"
	"github.com/rohits-web03/chainnotes/internal/api/handlers"
	"github.com/rohits-web03/chainnotes/internal/api/middleware"
	"github.com/rohits-web03/chainnotes/internal/logging"
)

// NewRouter mounts the public auth routes and the bearer-protected API under
// /api/v1.
func NewRouter(h *handlers.Handler, auth middleware.Authenticator, log logging.Logger, corsOpts cors.Options) http.Handler {
	mainMux := http.NewServeMux()

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	authMux := http.NewServeMux()
	authMux.HandleFunc("POST /register", h.Register)
	authMux.HandleFunc("POST /login", h.Login)
	authMux.HandleFunc("POST /logout", h.Logout)
	authMux.HandleFunc("GET /google/login", h.GoogleLogin)
	authMux.HandleFunc("GET /google/callback", h.GoogleCallback)

	mainMux.Handle("/api/v1/auth/",
		http.StripPrefix("/api/v1/auth", authMux),
	)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	protectedMux.HandleFunc("GET /notes", h.ListNotes)
	protectedMux.HandleFunc("POST /notes", h.CreateNote)
	protectedMux.HandleFunc("GET /notes/{id}", h.GetNote)
	protectedMux.HandleFunc("PUT /notes/{id}", h.UpdateNote)
	protectedMux.HandleFunc("DELETE /notes/{id}", h.DeleteNote)
	protectedMux.HandleFunc("PATCH /notes/{id}/favorite", h.ToggleFavorite)

	protectedMux.HandleFunc("GET /notes/recycle-bin", h.ListRecycleBin)
	protectedMux.HandleFunc("PATCH /notes/recycle-bin/{id}/restore", h.RestoreNote)
	protectedMux.HandleFunc("DELETE /notes/recycle-bin/{id}", h.PurgeNote)
	protectedMux.HandleFunc("POST /notes/recycle-bin/bulk-restore", h.BulkRestore)
	protectedMux.HandleFunc("POST /notes/recycle-bin/bulk-delete", h.BulkPurge)

	protectedMux.HandleFunc("GET /todos", h.ListTodos)
	protectedMux.HandleFunc("POST /todos", h.CreateTodo)
	protectedMux.HandleFunc("GET /todos/{id}", h.GetTodo)
	protectedMux.HandleFunc("PUT /todos/{id}", h.UpdateTodo)
	protectedMux.HandleFunc("DELETE /todos/{id}", h.DeleteTodo)
	protectedMux.HandleFunc("PATCH /todos/{id}/toggle", h.ToggleTodo)

	protectedMux.HandleFunc("GET /users/me", h.Me)
	protectedMux.HandleFunc("POST /users/me/avatar/presign", h.PresignAvatar)
	protectedMux.HandleFunc("PUT /users/me/avatar", h.SetAvatar)

	protectedMux.HandleFunc("POST /blockchain/transactions", h.RecordTransaction)
	protectedMux.HandleFunc("GET /blockchain/transactions", h.ListTransactions)
	protectedMux.HandleFunc("GET /blockchain/analytics", h.Analytics)
	protectedMux.HandleFunc("GET /blockchain/balance/{address}", h.Balance)

	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			middleware.Auth(auth, log)(protectedMux),
		),
	)

	log.Info(context.Background(), "router initialized")
	handler := cors.New(corsOpts).Handler(mainMux)
	handler = middleware.Logger(log)(handler)
	return handler
}
