package repositories

import (
	"context"

	"github.com/rohits-web03/chainnotes/internal/models"
	"gorm.io/gorm"
)

const todoOrder = `completed ASC, due_date ASC NULLS LAST, ` +
	`CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC, created_at DESC`

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) List(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	var todos []models.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order(todoOrder).
		Find(&todos).Error
	if err != nil {
		return nil, translate(err)
	}
	return todos, nil
}

func (r *TodoRepository) FindOwned(ctx context.Context, ownerID, todoID int64) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", todoID, ownerID).
		First(&todo).Error
	if err != nil {
		return nil, translate(err)
	}
	return &todo, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return translate(r.db.WithContext(ctx).Create(todo).Error)
}

func (r *TodoRepository) Save(ctx context.Context, todo *models.Todo) error {
	res := r.db.WithContext(ctx).
		Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", todo.ID, todo.UserID).
		Updates(map[string]any{
			"title":       todo.Title,
			"description": todo.Description,
			"completed":   todo.Completed,
			"priority":    todo.Priority,
			"due_date":    todo.DueDate,
			"updated_at":  todo.UpdatedAt,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, ownerID, todoID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", todoID, ownerID).
		Delete(&models.Todo{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
