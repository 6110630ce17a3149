package handlers

import (
	"net/http"

	"github.com/rohits-web03/chainnotes/internal/services"
	"github.com/rohits-web03/chainnotes/internal/utils"
)

// ListTodos godoc
// @Summary List todos
// @Description Incomplete first, then by due date (undated last), priority high to low, newest first.
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Todo
// @Router /api/v1/todos [get]
func (h *Handler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todos.List(r.Context(), caller(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, todos)
}

// GetTodo godoc
// @Summary Get a todo
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} models.Todo
// @Failure 404 {object} utils.Payload
// @Router /api/v1/todos/{id} [get]
func (h *Handler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	todo, err := h.todos.Get(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, todo)
}

// CreateTodo godoc
// @Summary Create a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param todo body services.TodoInput true "Todo"
// @Success 201 {object} models.Todo
// @Failure 400 {object} utils.Payload
// @Router /api/v1/todos [post]
func (h *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var in services.TodoInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	todo, err := h.todos.Create(r.Context(), caller(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusCreated, todo)
}

// UpdateTodo godoc
// @Summary Edit a todo
// @Tags Todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param todo body services.TodoInput true "Todo"
// @Success 200 {object} models.Todo
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/todos/{id} [put]
func (h *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in services.TodoInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	todo, err := h.todos.Update(r.Context(), caller(r), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, todo)
}

// ToggleTodo godoc
// @Summary Flip the completed flag of a todo
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} models.Todo
// @Failure 404 {object} utils.Payload
// @Router /api/v1/todos/{id}/toggle [patch]
func (h *Handler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	todo, err := h.todos.ToggleComplete(r.Context(), caller(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, todo)
}

// DeleteTodo godoc
// @Summary Delete a todo
// @Tags Todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/todos/{id} [delete]
func (h *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.todos.Delete(r.Context(), caller(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{Message: "todo deleted"})
}
