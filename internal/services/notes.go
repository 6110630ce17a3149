package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rohits-web03/chainnotes/internal/models"
)

// NoteStore is the persistence contract of NoteService. Every single-note
// lookup and mutation filters by note id and owner id together.
type NoteStore interface {
	List(ctx context.Context, ownerID int64, status models.NoteStatus) ([]models.Note, error)
	FindOwned(ctx context.Context, ownerID, noteID int64, status models.NoteStatus) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) error
	Save(ctx context.Context, note *models.Note) error
	Purge(ctx context.Context, ownerID, noteID int64) error
	RestoreMany(ctx context.Context, ownerID int64, noteIDs []int64, now time.Time) ([]int64, error)
	PurgeMany(ctx context.Context, ownerID int64, noteIDs []int64) ([]int64, error)
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type NoteInput struct {
	Title   string       `json:"title" validate:"required,max=255"`
	Content string       `json:"content" validate:"required"`
	Tags    []models.Tag `json:"tags" validate:"omitempty,max=20,dive"`
}

func (in *NoteInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	if strings.TrimSpace(in.Content) == "" {
		in.Content = ""
	}
}

type NoteService struct {
	store     NoteStore
	retention time.Duration
	now       func() time.Time
}

// DefaultRetention is how long a note stays in the recycle bin.
const DefaultRetention = 30 * 24 * time.Hour

func NewNoteService(store NoteStore, retention time.Duration) *NoteService {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &NoteService{store: store, retention: retention, now: time.Now}
}

func (s *NoteService) List(ctx context.Context, ownerID int64) ([]models.Note, error) {
	notes, err := s.store.List(ctx, ownerID, models.NoteActive)
	return notes, storeErr("list notes", "note", err)
}

func (s *NoteService) ListDeleted(ctx context.Context, ownerID int64) ([]models.Note, error) {
	notes, err := s.store.List(ctx, ownerID, models.NoteDeleted)
	return notes, storeErr("list deleted notes", "note", err)
}

func (s *NoteService) Get(ctx context.Context, ownerID, noteID int64) (*models.Note, error) {
	note, err := s.store.FindOwned(ctx, ownerID, noteID, models.NoteActive)
	if err != nil {
		return nil, storeErr("find note", "note", err)
	}
	return note, nil
}

func (s *NoteService) Create(ctx context.Context, ownerID int64, in NoteInput) (*models.Note, error) {
	in.normalize()
	if err := check(in); err != nil {
		return nil, err
	}

	now := s.now()
	note := &models.Note{
		UserID:    ownerID,
		Title:     in.Title,
		Content:   in.Content,
		Tags:      in.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, note); err != nil {
		return nil, storeErr("create note", "note", err)
	}
	return note, nil
}

// Update edits an active note. Notes in the recycle bin must be restored first.
func (s *NoteService) Update(ctx context.Context, ownerID, noteID int64, in NoteInput) (*models.Note, error) {
	note, err := s.Get(ctx, ownerID, noteID)
	if err != nil {
		return nil, err
	}

	in.normalize()
	if err := check(in); err != nil {
		return nil, err
	}

	note.Title = in.Title
	note.Content = in.Content
	if in.Tags != nil {
		note.Tags = in.Tags
	}
	note.UpdatedAt = s.now()
	if err := s.store.Save(ctx, note); err != nil {
		return nil, storeErr("update note", "note", err)
	}
	return note, nil
}

// SoftDelete moves an active note to the recycle bin. Deleting it again is a
// NotFoundError because deleted notes are not active.
func (s *NoteService) SoftDelete(ctx context.Context, ownerID, noteID int64) (*models.Note, error) {
	note, err := s.Get(ctx, ownerID, noteID)
	if err != nil {
		return nil, err
	}

	note.NoteLifecycle = models.Deleted(s.now())
	if err := s.store.Save(ctx, note); err != nil {
		return nil, storeErr("delete note", "note", err)
	}
	return note, nil
}

func (s *NoteService) Restore(ctx context.Context, ownerID, noteID int64) (*models.Note, error) {
	note, err := s.store.FindOwned(ctx, ownerID, noteID, models.NoteDeleted)
	if err != nil {
		return nil, storeErr("find deleted note", "note", err)
	}

	note.NoteLifecycle = models.Active()
	note.UpdatedAt = s.now()
	if err := s.store.Save(ctx, note); err != nil {
		return nil, storeErr("restore note", "note", err)
	}
	return note, nil
}

func (s *NoteService) Purge(ctx context.Context, ownerID, noteID int64) error {
	return storeErr("purge note", "note", s.store.Purge(ctx, ownerID, noteID))
}

func (s *NoteService) ToggleFavorite(ctx context.Context, ownerID, noteID int64) (*models.Note, error) {
	note, err := s.Get(ctx, ownerID, noteID)
	if err != nil {
		return nil, err
	}

	note.IsFavorite = !note.IsFavorite
	note.UpdatedAt = s.now()
	if err := s.store.Save(ctx, note); err != nil {
		return nil, storeErr("toggle favorite", "note", err)
	}
	return note, nil
}

// BulkRestore restores the caller's deleted notes among ids. Ids that are not
// owned, not found or not deleted are skipped. The result keeps request order.
func (s *NoteService) BulkRestore(ctx context.Context, ownerID int64, ids []int64) ([]int64, error) {
	ids, err := bulkIDs(ids)
	if err != nil || len(ids) == 0 {
		return []int64{}, err
	}
	affected, err := s.store.RestoreMany(ctx, ownerID, ids, s.now())
	if err != nil {
		return nil, storeErr("bulk restore", "note", err)
	}
	return inRequestOrder(ids, affected), nil
}

// BulkPurge permanently removes the caller's deleted notes among ids.
func (s *NoteService) BulkPurge(ctx context.Context, ownerID int64, ids []int64) ([]int64, error) {
	ids, err := bulkIDs(ids)
	if err != nil || len(ids) == 0 {
		return []int64{}, err
	}
	affected, err := s.store.PurgeMany(ctx, ownerID, ids)
	if err != nil {
		return nil, storeErr("bulk purge", "note", err)
	}
	return inRequestOrder(ids, affected), nil
}

// ExpireOldDeleted purges, across all owners, notes deleted longer ago than
// the retention period.
func (s *NoteService) ExpireOldDeleted(ctx context.Context) (int64, error) {
	n, err := s.store.PurgeDeletedBefore(ctx, s.now().Add(-s.retention))
	if err != nil {
		return 0, &StorageError{Op: "expire deleted notes", Err: err}
	}
	return n, nil
}

// bulkIDs rejects empty requests and drops duplicate or non-positive ids.
func bulkIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, invalid("ids", "ids must contain at least one note id")
	}
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}

func inRequestOrder(requested, affected []int64) []int64 {
	out := make([]int64, 0, len(affected))
	for _, id := range requested {
		if slices.Contains(affected, id) {
			out = append(out, id)
		}
	}
	return out
}
