// Package memstore keeps users, notes, todos and ledger records in memory.
// It follows the same contracts as the gorm repositories and backs local
// runs with DB_URL=memory and the HTTP tests.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rohits-web03/chainnotes/internal/models"
	"github.com/rohits-web03/chainnotes/internal/repositories"
	"github.com/shopspring/decimal"
)

type Store struct {
	mu     sync.RWMutex
	now    func() time.Time
	nextID int64

	users map[int64]models.User
	notes map[int64]models.Note
	todos map[int64]models.Todo
	txs   map[int64]models.BlockchainTransaction
}

func New() *Store {
	return &Store{
		now:   time.Now,
		users: make(map[int64]models.User),
		notes: make(map[int64]models.Note),
		todos: make(map[int64]models.Todo),
		txs:   make(map[int64]models.BlockchainTransaction),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) Users() *Users               { return &Users{s} }
func (s *Store) Notes() *Notes               { return &Notes{s} }
func (s *Store) Todos() *Todos               { return &Todos{s} }
func (s *Store) Transactions() *Transactions { return &Transactions{s} }

// --- users ---

type Users struct{ s *Store }

func (r *Users) find(match func(models.User) bool) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *Users) FindByID(_ context.Context, id int64) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *Users) FindByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID })
}

func (r *Users) conflicts(user *models.User) bool {
	for _, u := range r.s.users {
		if u.ID == user.ID {
			continue
		}
		if u.Email == user.Email {
			return true
		}
		if u.GoogleID != nil && user.GoogleID != nil && *u.GoogleID == *user.GoogleID {
			return true
		}
	}
	return false
}

func (r *Users) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.conflicts(user) {
		return repositories.ErrDuplicate
	}
	user.ID = r.s.id()
	now := r.s.now()
	user.CreatedAt, user.UpdatedAt = now, now
	r.s.users[user.ID] = *user
	return nil
}

func (r *Users) Save(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.users[user.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	if r.conflicts(user) {
		return repositories.ErrDuplicate
	}
	stored.Name = user.Name
	stored.GoogleID = user.GoogleID
	stored.AvatarURL = user.AvatarURL
	stored.UpdatedAt = user.UpdatedAt
	r.s.users[user.ID] = stored
	return nil
}

// --- notes ---

type Notes struct{ s *Store }

func (r *Notes) List(_ context.Context, ownerID int64, status models.NoteStatus) ([]models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Note{}
	for _, n := range r.s.notes {
		if n.UserID == ownerID && n.Status() == status {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b models.Note) int {
		if status == models.NoteDeleted {
			return b.DeletedAt.Compare(*a.DeletedAt)
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out, nil
}

func (r *Notes) FindOwned(_ context.Context, ownerID, noteID int64, status models.NoteStatus) (*models.Note, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n, ok := r.s.notes[noteID]
	if !ok || n.UserID != ownerID || n.Status() != status {
		return nil, repositories.ErrNotFound
	}
	return &n, nil
}

func (r *Notes) Create(_ context.Context, note *models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	note.ID = r.s.id()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = r.s.now()
	}
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = note.CreatedAt
	}
	r.s.notes[note.ID] = *note
	return nil
}

func (r *Notes) Save(_ context.Context, note *models.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.notes[note.ID]
	if !ok || stored.UserID != note.UserID {
		return repositories.ErrNotFound
	}
	stored.Title = note.Title
	stored.Content = note.Content
	stored.Tags = note.Tags
	stored.IsFavorite = note.IsFavorite
	stored.NoteLifecycle = note.NoteLifecycle
	stored.UpdatedAt = note.UpdatedAt
	r.s.notes[note.ID] = stored
	return nil
}

func (r *Notes) Purge(_ context.Context, ownerID, noteID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notes[noteID]
	if !ok || n.UserID != ownerID || n.Status() != models.NoteDeleted {
		return repositories.ErrNotFound
	}
	delete(r.s.notes, noteID)
	return nil
}

func (r *Notes) eachDeleted(ownerID int64, noteIDs []int64, apply func(models.Note)) []int64 {
	var affected []int64
	for _, id := range noteIDs {
		n, ok := r.s.notes[id]
		if !ok || n.UserID != ownerID || n.Status() != models.NoteDeleted {
			continue
		}
		apply(n)
		affected = append(affected, id)
	}
	return affected
}

func (r *Notes) RestoreMany(_ context.Context, ownerID int64, noteIDs []int64, now time.Time) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.eachDeleted(ownerID, noteIDs, func(n models.Note) {
		n.NoteLifecycle = models.Active()
		n.UpdatedAt = now
		r.s.notes[n.ID] = n
	}), nil
}

func (r *Notes) PurgeMany(_ context.Context, ownerID int64, noteIDs []int64) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.eachDeleted(ownerID, noteIDs, func(n models.Note) {
		delete(r.s.notes, n.ID)
	}), nil
}

func (r *Notes) PurgeDeletedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, note := range r.s.notes {
		if at, ok := note.DeletedSince(); ok && at.Before(cutoff) {
			delete(r.s.notes, id)
			n++
		}
	}
	return n, nil
}

// --- todos ---

type Todos struct{ s *Store }

func (r *Todos) List(_ context.Context, ownerID int64) ([]models.Todo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.Todo{}
	for _, t := range r.s.todos {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b models.Todo) int {
		if c := models.CompareTodos(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *Todos) FindOwned(_ context.Context, ownerID, todoID int64) (*models.Todo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.todos[todoID]
	if !ok || t.UserID != ownerID {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

func (r *Todos) Create(_ context.Context, todo *models.Todo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	todo.ID = r.s.id()
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = r.s.now()
	}
	if todo.UpdatedAt.IsZero() {
		todo.UpdatedAt = todo.CreatedAt
	}
	r.s.todos[todo.ID] = *todo
	return nil
}

func (r *Todos) Save(_ context.Context, todo *models.Todo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.todos[todo.ID]
	if !ok || stored.UserID != todo.UserID {
		return repositories.ErrNotFound
	}
	todo.CreatedAt = stored.CreatedAt
	r.s.todos[todo.ID] = *todo
	return nil
}

func (r *Todos) Delete(_ context.Context, ownerID, todoID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.todos[todoID]
	if !ok || t.UserID != ownerID {
		return repositories.ErrNotFound
	}
	delete(r.s.todos, todoID)
	return nil
}

// --- ledger records ---

type Transactions struct{ s *Store }

func (r *Transactions) Create(_ context.Context, tx *models.BlockchainTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.txs {
		if existing.TxHash == tx.TxHash {
			return repositories.ErrDuplicate
		}
	}
	tx.ID = r.s.id()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = r.s.now()
	}
	r.s.txs[tx.ID] = *tx
	return nil
}

func (r *Transactions) List(_ context.Context, ownerID int64) ([]models.BlockchainTransaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []models.BlockchainTransaction{}
	for _, tx := range r.s.txs {
		if tx.UserID == ownerID {
			out = append(out, tx)
		}
	}
	slices.SortFunc(out, func(a, b models.BlockchainTransaction) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (r *Transactions) Summaries(_ context.Context, ownerID int64) ([]models.ActionSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	byAction := map[string]*models.ActionSummary{}
	for _, tx := range r.s.txs {
		if tx.UserID != ownerID {
			continue
		}
		sum, ok := byAction[tx.Action]
		if !ok {
			sum = &models.ActionSummary{Action: tx.Action, TotalAmount: decimal.Zero}
			byAction[tx.Action] = sum
		}
		sum.Count++
		sum.TotalAmount = sum.TotalAmount.Add(tx.Amount)
	}
	out := make([]models.ActionSummary, 0, len(byAction))
	for _, sum := range byAction {
		out = append(out, *sum)
	}
	slices.SortFunc(out, func(a, b models.ActionSummary) int { return cmp.Compare(a.Action, b.Action) })
	return out, nil
}
