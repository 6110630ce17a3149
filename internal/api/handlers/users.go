package handlers

import (
	"net/http"

	"github.com/rohits-web03/chainnotes/internal/utils"
)

type avatarRequest struct {
	Key string `json:"key"`
}

// Me godoc
// @Summary Current user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} utils.Payload
// @Router /api/v1/users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, user)
}

// PresignAvatar godoc
// @Summary Get an upload URL for a new avatar
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.AvatarUpload
// @Failure 503 {object} utils.Payload "Object storage not configured"
// @Router /api/v1/users/me/avatar/presign [post]
func (h *Handler) PresignAvatar(w http.ResponseWriter, r *http.Request) {
	upload, err := h.users.PresignAvatar(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, upload)
}

// SetAvatar godoc
// @Summary Use an uploaded object as avatar
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body avatarRequest true "Object key returned by presign"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.Payload
// @Router /api/v1/users/me/avatar [put]
func (h *Handler) SetAvatar(w http.ResponseWriter, r *http.Request) {
	var in avatarRequest
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	user, err := h.users.SetAvatar(r.Context(), caller(r), in.Key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, user)
}
