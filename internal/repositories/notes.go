package repositories

import (
	"context"
	"time"

	"github.com/rohits-web03/chainnotes/internal/models"
	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func withStatus(q *gorm.DB, status models.NoteStatus) *gorm.DB {
	if status == models.NoteDeleted {
		return q.Where("deleted_at IS NOT NULL")
	}
	return q.Where("deleted_at IS NULL")
}

// List returns the owner's notes in the given state. Active notes are ordered
// by last update, deleted ones by deletion time, newest first.
func (r *NoteRepository) List(ctx context.Context, ownerID int64, status models.NoteStatus) ([]models.Note, error) {
	order := "updated_at DESC"
	if status == models.NoteDeleted {
		order = "deleted_at DESC"
	}

	var notes []models.Note
	q := r.db.WithContext(ctx).Where("user_id = ?", ownerID)
	err := withStatus(q, status).Order(order).Find(&notes).Error
	if err != nil {
		return nil, translate(err)
	}
	return notes, nil
}

// FindOwned looks a note up by id and owner in one query.
func (r *NoteRepository) FindOwned(ctx context.Context, ownerID, noteID int64, status models.NoteStatus) (*models.Note, error) {
	var note models.Note
	q := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", noteID, ownerID)
	if err := withStatus(q, status).First(&note).Error; err != nil {
		return nil, translate(err)
	}
	return &note, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	return translate(r.db.WithContext(ctx).Create(note).Error)
}

// Save writes the mutable fields of an owned note.
func (r *NoteRepository) Save(ctx context.Context, note *models.Note) error {
	res := r.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Updates(map[string]any{
			"title":       note.Title,
			"content":     note.Content,
			"tags":        note.Tags,
			"is_favorite": note.IsFavorite,
			"deleted_at":  note.DeletedAt,
			"updated_at":  note.UpdatedAt,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Purge removes an owned note that is in the recycle bin.
func (r *NoteRepository) Purge(ctx context.Context, ownerID, noteID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND deleted_at IS NOT NULL", noteID, ownerID).
		Delete(&models.Note{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// deletedSubset returns the ids among noteIDs that are deleted notes of ownerID.
func deletedSubset(tx *gorm.DB, ownerID int64, noteIDs []int64) ([]int64, error) {
	var found []int64
	err := tx.Model(&models.Note{}).
		Where("user_id = ? AND id IN ? AND deleted_at IS NOT NULL", ownerID, noteIDs).
		Pluck("id", &found).Error
	return found, err
}

// RestoreMany restores the owned deleted notes among noteIDs and returns the
// ids it restored.
func (r *NoteRepository) RestoreMany(ctx context.Context, ownerID int64, noteIDs []int64, now time.Time) ([]int64, error) {
	var affected []int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids, err := deletedSubset(tx, ownerID, noteIDs)
		if err != nil || len(ids) == 0 {
			return err
		}
		err = tx.Model(&models.Note{}).
			Where("user_id = ? AND id IN ?", ownerID, ids).
			Updates(map[string]any{"deleted_at": nil, "updated_at": now}).Error
		if err != nil {
			return err
		}
		affected = ids
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return affected, nil
}

// PurgeMany removes the owned deleted notes among noteIDs and returns the ids
// it removed.
func (r *NoteRepository) PurgeMany(ctx context.Context, ownerID int64, noteIDs []int64) ([]int64, error) {
	var affected []int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids, err := deletedSubset(tx, ownerID, noteIDs)
		if err != nil || len(ids) == 0 {
			return err
		}
		err = tx.Where("user_id = ? AND id IN ?", ownerID, ids).Delete(&models.Note{}).Error
		if err != nil {
			return err
		}
		affected = ids
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return affected, nil
}

// PurgeDeletedBefore removes every deleted note, for all owners, whose
// deletion time is older than cutoff.
func (r *NoteRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Note{})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}
