package handlers

import (
	"net/http"

	"github.com/rohits-web03/chainnotes/internal/services"
	"github.com/rohits-web03/chainnotes/internal/utils"
)

// IDList is the body of bulk recycle-bin requests and their responses.
type IDList struct {
	IDs []int64 `json:"ids"`
}

// ListNotes godoc
// @Summary List active notes
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Note
// @Failure 401 {object} utils.Payload
// @Router /api/v1/notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, notes)
}

// GetNote godoc
// @Summary Get an active note
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} models.Note
// @Failure 404 {object} utils.Payload
// @Router /api/v1/notes/{id} [get]
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	note, err := h.notes.Get(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, note)
}

// CreateNote godoc
// @Summary Create a note
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body services.NoteInput true "Note"
// @Success 201 {object} models.Note
// @Failure 400 {object} utils.Payload
// @Router /api/v1/notes [post]
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var in services.NoteInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	note, err := h.notes.Create(r.Context(), caller(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusCreated, note)
}

// UpdateNote godoc
// @Summary Edit an active note
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param note body services.NoteInput true "Note"
// @Success 200 {object} models.Note
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/notes/{id} [put]
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.NoteInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	note, err := h.notes.Update(r.Context(), caller(r), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, note)
}

// DeleteNote godoc
// @Summary Move a note to the recycle bin
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} models.Note
// @Failure 404 {object} utils.Payload
// @Router /api/v1/notes/{id} [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	note, err := h.notes.SoftDelete(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, note)
}

// ToggleFavorite godoc
// @Summary Flip the favorite flag of a note
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} models.Note
// @Failure 404 {object} utils.Payload
// @Router /api/v1/notes/{id}/favorite [patch]
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	note, err := h.notes.ToggleFavorite(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, note)
}

// ListRecycleBin godoc
// @Summary List deleted notes, most recently deleted first
// @Tags Recycle Bin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Note
// @Router /api/v1/notes/recycle-bin [get]
func (h *Handler) ListRecycleBin(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.ListDeleted(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, notes)
}

// RestoreNote godoc
// @Summary Restore a deleted note
// @Tags Recycle Bin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} models.Note
// @Failure 404 {object} utils.Payload
// @Router /api/v1/notes/recycle-bin/{id}/restore [patch]
func (h *Handler) RestoreNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	note, err := h.notes.Restore(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, note)
}

// PurgeNote godoc
// @Summary Permanently delete a note from the recycle bin
// @Tags Recycle Bin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/notes/recycle-bin/{id} [delete]
func (h *Handler) PurgeNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.notes.Purge(r.Context(), caller(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{Message: "note permanently deleted"})
}

// BulkRestore godoc
// @Summary Restore several deleted notes
// @Description Ids that are not deleted notes of the caller are skipped.
// @Tags Recycle Bin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ids body IDList true "Note IDs"
// @Success 200 {object} IDList
// @Failure 400 {object} utils.Payload
// @Router /api/v1/notes/recycle-bin/bulk-restore [post]
func (h *Handler) BulkRestore(w http.ResponseWriter, r *http.Request) {
	var in IDList
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	ids, err := h.notes.BulkRestore(r.Context(), caller(r), in.IDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, IDList{IDs: ids})
}

// BulkPurge godoc
// @Summary Permanently delete several notes from the recycle bin
// @Tags Recycle Bin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ids body IDList true "Note IDs"
// @Success 200 {object} IDList
// @Failure 400 {object} utils.Payload
// @Router /api/v1/notes/recycle-bin/bulk-delete [post]
func (h *Handler) BulkPurge(w http.ResponseWriter, r *http.Request) {
	var in IDList
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	ids, err := h.notes.BulkPurge(r.Context(), caller(r), in.IDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, IDList{IDs: ids})
}
