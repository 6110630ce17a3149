package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/rohits-web03/chainnotes/internal/api/middleware"
	"github.com/rohits-web03/chainnotes/internal/logging"
	"github.com/rohits-web03/chainnotes/internal/services"
	"github.com/rohits-web03/chainnotes/internal/utils"
)

const maxBodyBytes = 1 << 20

// Handler serves the HTTP API on top of the domain services.
type Handler struct {
	notes  *services.NoteService
	todos  *services.TodoService
	users  *services.UserService
	chain  *services.BlockchainService
	google *services.GoogleProvider
	log    logging.Logger

	frontendURL   string
	secureCookies bool
	tokenTTL      time.Duration
}

type Options struct {
	Notes      *services.NoteService
	Todos      *services.TodoService
	Users      *services.UserService
	Blockchain *services.BlockchainService
	// Google is nil when OAuth sign-in is not configured.
	Google *services.GoogleProvider
	Log    logging.Logger

	FrontendURL   string
	SecureCookies bool
	TokenTTL      time.Duration
}

func New(opts Options) *Handler {
	return &Handler{
		notes:         opts.Notes,
		todos:         opts.Todos,
		users:         opts.Users,
		chain:         opts.Blockchain,
		google:        opts.Google,
		log:           opts.Log.With("component", "http"),
		frontendURL:   opts.FrontendURL,
		secureCookies: opts.SecureCookies,
		tokenTTL:      opts.TokenTTL,
	}
}

var errUnsupportedMedia = errors.New("content type must be application/json")

// decodeJSON reads exactly one JSON value. Bodies that are not declared as
// application/json are refused so cookie-authenticated form posts from other
// sites cannot reach a handler.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return errUnsupportedMedia
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &services.ValidationError{Field: "body", Message: fmt.Sprintf("invalid request body: %v", err)}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &services.ValidationError{Field: "body", Message: "request body must hold a single JSON value"}
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &services.ValidationError{Field: "id", Message: "id must be a positive integer"}
	}
	return id, nil
}

// caller returns the authenticated user's id. Routes using it are mounted
// behind middleware.Auth.
func caller(r *http.Request) int64 {
	u, _ := middleware.UserFromContext(r.Context())
	return u.ID
}

// writeError maps service errors onto status codes. Anything unrecognised is
// logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation  *services.ValidationError
		notFound    *services.NotFoundError
		auth        *services.AuthError
		conflict    *services.ConflictError
		unavailable *services.UnavailableError
	)

	switch {
	case errors.Is(err, errUnsupportedMedia):
		utils.ErrorResponse(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.As(err, &validation):
		utils.ErrorResponse(w, http.StatusBadRequest, validation.Message)
	case errors.As(err, &notFound):
		utils.ErrorResponse(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &auth):
		utils.ErrorResponse(w, auth.Status, auth.Message)
	case errors.As(err, &conflict):
		utils.ErrorResponse(w, http.StatusConflict, conflict.Message)
	case errors.As(err, &unavailable):
		utils.ErrorResponse(w, http.StatusServiceUnavailable, unavailable.Error())
	default:
		h.log.Error(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		utils.ErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}
