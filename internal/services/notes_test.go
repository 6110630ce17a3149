package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rohits-web03/chainnotes/internal/models"
	"github.com/rohits-web03/chainnotes/internal/repositories/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newNoteService(t *testing.T) (*NoteService, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewNoteService(memstore.New().Notes(), 0)
	svc.now = c.now
	return svc, c
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func requireValidation(t *testing.T, err error) {
	t.Helper()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func noteIDs(notes []models.Note) []int64 {
	out := make([]int64, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestNoteService_CreateValidation(t *testing.T) {
	svc, _ := newNoteService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, NoteInput{Title: "", Content: "<p>x</p>"})
	requireValidation(t, err)

	_, err = svc.Create(ctx, 1, NoteInput{Title: "   ", Content: "<p>x</p>"})
	requireValidation(t, err)

	_, err = svc.Create(ctx, 1, NoteInput{Title: "T", Content: ""})
	requireValidation(t, err)

	var ve *ValidationError
	_, err = svc.Create(ctx, 1, NoteInput{Title: "T", Content: "c", Tags: []models.Tag{{Name: ""}}})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)
}

func TestNoteService_SoftDeleteMovesToRecycleBin(t *testing.T) {
	svc, _ := newNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, 1, NoteInput{Title: "T1", Content: "<p>hi</p>", Tags: []models.Tag{{Name: "work", Color: "#ff0000"}}})
	require.NoError(t, err)
	assert.Equal(t, models.NoteActive, note.Status())

	active, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{note.ID}, noteIDs(active))

	deleted, err := svc.SoftDelete(ctx, 1, note.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NoteDeleted, deleted.Status())

	active, err = svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, active)

	bin, err := svc.ListDeleted(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{note.ID}, noteIDs(bin))

	_, err = svc.Get(ctx, 1, note.ID)
	requireNotFound(t, err)
}

func TestNoteService_SoftDeleteTwiceIsNotFound(t *testing.T) {
	svc, _ := newNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, 1, NoteInput{Title: "T", Content: "c"})
	require.NoError(t, err)

	_, err = svc.SoftDelete(ctx, 1, note.ID)
	require.NoError(t, err)

	_, err = svc.SoftDelete(ctx, 1, note.ID)
	requireNotFound(t, err)
}

func TestNoteService_OtherUserCannotTouchNote(t *testing.T) {
	svc, _ := newNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, 1, NoteInput{Title: "mine", Content: "c"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, 2, note.ID)
	requireNotFound(t, err)
	_, err = svc.Update(ctx, 2, note.ID, NoteInput{Title: "stolen", Content: "c"})
	requireNotFound(t, err)
	_, err = svc.ToggleFavorite(ctx, 2, note.ID)
	requireNotFound(t, err)
	_, err = svc.SoftDelete(ctx, 2, note.ID)
	requireNotFound(t, err)

	_, err = svc.SoftDelete(ctx, 1, note.ID)
	require.NoError(t, err)

	_, err = svc.Restore(ctx, 2, note.ID)
	requireNotFound(t, err)
	err = svc.Purge(ctx, 2, note.ID)
	requireNotFound(t, err)

	bin, err := svc.ListDeleted(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, bin, 1)
}

func TestNoteService_RestoreRoundTrip(t *testing.T) {
	svc, c := newNoteService(t)
	ctx := context.Background()

	orig, err := svc.Create(ctx, 1, NoteInput{Title: "T1", Content: "<p>hi</p>"})
	require.NoError(t, err)

	c.advance(time.Minute)
	_, err = svc.SoftDelete(ctx, 1, orig.ID)
	require.NoError(t, err)

	c.advance(time.Minute)
	restored, err := svc.Restore(ctx, 1, orig.ID)
	require.NoError(t, err)

	assert.Equal(t, orig.ID, restored.ID)
	assert.Equal(t, orig.Title, restored.Title)
	assert.Equal(t, orig.Content, restored.Content)
	assert.Equal(t, orig.CreatedAt, restored.CreatedAt)
	assert.Equal(t, models.NoteActive, restored.Status())
	assert.True(t, restored.UpdatedAt.After(orig.UpdatedAt))

	active, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{orig.ID}, noteIDs(active))

	_, err = svc.Restore(ctx, 1, orig.ID)
	requireNotFound(t, err)
}

func TestNoteService_UpdateRequiresActiveNote(t *testing.T) {
	svc, c := newNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, 1, NoteInput{Title: "T", Content: "c"})
	require.NoError(t, err)

	c.advance(time.Second)
	updated, err := svc.Update(ctx, 1, note.ID, NoteInput{Title: "T2", Content: "c2"})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "c2", updated.Content)
	assert.True(t, updated.UpdatedAt.After(note.UpdatedAt))

	_, err = svc.Update(ctx, 1, note.ID, NoteInput{Title: "", Content: "c2"})
	requireValidation(t, err)

	_, err = svc.SoftDelete(ctx, 1, note.ID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, note.ID, NoteInput{Title: "T3", Content: "c3"})
	requireNotFound(t, err)
}

func TestNoteService_ListOrderedByUpdate(t *testing.T) {
	svc, c := newNoteService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, 1, NoteInput{Title: "a", Content: "c"})
	require.NoError(t, err)
	c.advance(time.Minute)
	b, err := svc.Create(ctx, 1, NoteInput{Title: "b", Content: "c"})
	require.NoError(t, err)
	c.advance(time.Minute)
	_, err = svc.Update(ctx, 1, a.ID, NoteInput{Title: "a2", Content: "c"})
	require.NoError(t, err)

	notes, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, b.ID}, noteIDs(notes))
}

func TestNoteService_ToggleFavorite(t *testing.T) {
	svc, _ := newNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, 1, NoteInput{Title: "T", Content: "c"})
	require.NoError(t, err)
	assert.False(t, note.IsFavorite)

	fav, err := svc.ToggleFavorite(ctx, 1, note.ID)
	require.NoError(t, err)
	assert.True(t, fav.IsFavorite)

	fav, err = svc.ToggleFavorite(ctx, 1, note.ID)
	require.NoError(t, err)
	assert.False(t, fav.IsFavorite)
}

func TestNoteService_PurgeOnlyFromRecycleBin(t *testing.T) {
	svc, _ := newNoteService(t)
	ctx := context.Background()

	note, err := svc.Create(ctx, 1, NoteInput{Title: "T", Content: "c"})
	require.NoError(t, err)

	requireNotFound(t, svc.Purge(ctx, 1, note.ID))

	_, err = svc.SoftDelete(ctx, 1, note.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Purge(ctx, 1, note.ID))

	bin, err := svc.ListDeleted(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, bin)

	_, err = svc.Restore(ctx, 1, note.ID)
	requireNotFound(t, err)
}

func TestNoteService_BulkRestoreSkipsForeignNotes(t *testing.T) {
	svc, _ := newNoteService(t)
	ctx := context.Background()

	var ids []int64
	for _, owner := range []int64{1, 1, 2} {
		n, err := svc.Create(ctx, owner, NoteInput{Title: "T", Content: "c"})
		require.NoError(t, err)
		_, err = svc.SoftDelete(ctx, owner, n.ID)
		require.NoError(t, err)
		ids = append(ids, n.ID)
	}

	affected, err := svc.BulkRestore(ctx, 1, ids)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[0], ids[1]}, affected)

	active, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{ids[0], ids[1]}, noteIDs(active))

	foreign, err := svc.ListDeleted(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[2]}, noteIDs(foreign))
}

func TestNoteService_BulkPurge(t *testing.T) {
	svc, _ := newNoteService(t)
	ctx := context.Background()

	deleted, err := svc.Create(ctx, 1, NoteInput{Title: "gone", Content: "c"})
	require.NoError(t, err)
	_, err = svc.SoftDelete(ctx, 1, deleted.ID)
	require.NoError(t, err)

	active, err := svc.Create(ctx, 1, NoteInput{Title: "kept", Content: "c"})
	require.NoError(t, err)

	affected, err := svc.BulkPurge(ctx, 1, []int64{active.ID, deleted.ID, deleted.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, []int64{deleted.ID}, affected)

	notes, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{active.ID}, noteIDs(notes))

	_, err = svc.BulkPurge(ctx, 1, nil)
	requireValidation(t, err)
}

func TestNoteService_ExpireOldDeleted(t *testing.T) {
	svc, c := newNoteService(t)
	ctx := context.Background()
	start := c.t

	old, err := svc.Create(ctx, 1, NoteInput{Title: "old", Content: "c"})
	require.NoError(t, err)
	_, err = svc.SoftDelete(ctx, 1, old.ID)
	require.NoError(t, err)

	c.t = start.Add(2 * 24 * time.Hour)
	recent, err := svc.Create(ctx, 2, NoteInput{Title: "recent", Content: "c"})
	require.NoError(t, err)
	_, err = svc.SoftDelete(ctx, 2, recent.ID)
	require.NoError(t, err)

	// old was deleted 31 days ago, recent 29 days ago.
	c.t = start.Add(31 * 24 * time.Hour)
	n, err := svc.ExpireOldDeleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	bin, err := svc.ListDeleted(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, bin)

	bin, err = svc.ListDeleted(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{recent.ID}, noteIDs(bin))
}

type failingNotes struct {
	NoteStore
}

func (failingNotes) List(context.Context, int64, models.NoteStatus) ([]models.Note, error) {
	return nil, errors.New("connection refused")
}

func TestNoteService_StorageErrorsAreWrapped(t *testing.T) {
	svc := NewNoteService(failingNotes{}, 0)

	_, err := svc.List(context.Background(), 1)
	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list notes", se.Op)
}
