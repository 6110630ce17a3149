package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rohits-web03/chainnotes/internal/models"
)

type TodoStore interface {
	List(ctx context.Context, ownerID int64) ([]models.Todo, error)
	FindOwned(ctx context.Context, ownerID, todoID int64) (*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) error
	Save(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, ownerID, todoID int64) error
}

// TodoInput is the body of create and full-edit requests. An empty priority
// means medium; Completed is only honoured on edit. DueDate is YYYY-MM-DD; the
// RFC 3339 form is accepted too.
type TodoInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=10000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"dueDate"`
	Completed   *bool  `json:"completed"`
}

func (in *TodoInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Priority = strings.TrimSpace(in.Priority)
	in.DueDate = strings.TrimSpace(in.DueDate)
}

func (in *TodoInput) priority() models.Priority {
	if in.Priority == "" {
		return models.PriorityMedium
	}
	return models.Priority(in.Priority)
}

func (in *TodoInput) dueDate() (*models.Date, error) {
	if in.DueDate == "" {
		return nil, nil
	}
	d, err := models.ParseDate(in.DueDate)
	if err != nil {
		return nil, invalid("dueDate", "dueDate must be a YYYY-MM-DD date")
	}
	return &d, nil
}

type TodoService struct {
	store TodoStore
	now   func() time.Time
}

func NewTodoService(store TodoStore) *TodoService {
	return &TodoService{store: store, now: time.Now}
}

// List returns the owner's todos: incomplete first, then by due date with
// undated last, then priority high to low, then newest first.
func (s *TodoService) List(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	todos, err := s.store.List(ctx, ownerID)
	if err != nil {
		return nil, storeErr("list todos", "todo", err)
	}
	slices.SortStableFunc(todos, models.CompareTodos)
	return todos, nil
}

func (s *TodoService) Get(ctx context.Context, ownerID, todoID int64) (*models.Todo, error) {
	todo, err := s.store.FindOwned(ctx, ownerID, todoID)
	if err != nil {
		return nil, storeErr("find todo", "todo", err)
	}
	return todo, nil
}

func (s *TodoService) Create(ctx context.Context, ownerID int64, in TodoInput) (*models.Todo, error) {
	in.normalize()
	if err := check(in); err != nil {
		return nil, err
	}
	due, err := in.dueDate()
	if err != nil {
		return nil, err
	}

	now := s.now()
	todo := &models.Todo{
		UserID:      ownerID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.priority(),
		DueDate:     due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.Create(ctx, todo); err != nil {
		return nil, storeErr("create todo", "todo", err)
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, ownerID, todoID int64, in TodoInput) (*models.Todo, error) {
	todo, err := s.Get(ctx, ownerID, todoID)
	if err != nil {
		return nil, err
	}

	in.normalize()
	if err := check(in); err != nil {
		return nil, err
	}
	due, err := in.dueDate()
	if err != nil {
		return nil, err
	}

	todo.Title = in.Title
	todo.Description = in.Description
	todo.Priority = in.priority()
	todo.DueDate = due
	if in.Completed != nil {
		todo.Completed = *in.Completed
	}
	todo.UpdatedAt = s.now()
	if err := s.store.Save(ctx, todo); err != nil {
		return nil, storeErr("update todo", "todo", err)
	}
	return todo, nil
}

func (s *TodoService) ToggleComplete(ctx context.Context, ownerID, todoID int64) (*models.Todo, error) {
	todo, err := s.Get(ctx, ownerID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Completed = !todo.Completed
	todo.UpdatedAt = s.now()
	if err := s.store.Save(ctx, todo); err != nil {
		return nil, storeErr("toggle todo", "todo", err)
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, ownerID, todoID int64) error {
	return storeErr("delete todo", "todo", s.store.Delete(ctx, ownerID, todoID))
}
