package models

import (
	"time"

	"gorm.io/datatypes"
)

type Tag struct {
	Name  string `json:"name" validate:"required,max=64"`
	Color string `json:"color" validate:"omitempty,max=32"`
}

type NoteStatus int

const (
	NoteActive NoteStatus = iota
	NoteDeleted
)

func (s NoteStatus) String() string {
	if s == NoteDeleted {
		return "deleted"
	}
	return "active"
}

// NoteLifecycle is the Active | Deleted(at) state of a note. It is persisted
// as the nullable deleted_at column; the zero value is Active.
type NoteLifecycle struct {
	DeletedAt *time.Time `json:"deletedAt" gorm:"column:deleted_at;index"`
}

func (l NoteLifecycle) Status() NoteStatus {
	if l.DeletedAt == nil {
		return NoteActive
	}
	return NoteDeleted
}

// DeletedSince returns the deletion time of a Deleted note.
func (l NoteLifecycle) DeletedSince() (time.Time, bool) {
	if l.DeletedAt == nil {
		return time.Time{}, false
	}
	return *l.DeletedAt, true
}

// Expired reports whether a Deleted note has sat in the recycle bin past retention.
func (l NoteLifecycle) Expired(now time.Time, retention time.Duration) bool {
	at, ok := l.DeletedSince()
	return ok && at.Before(now.Add(-retention))
}

func Deleted(at time.Time) NoteLifecycle {
	return NoteLifecycle{DeletedAt: &at}
}

func Active() NoteLifecycle {
	return NoteLifecycle{}
}

type Note struct {
	ID         int64                    `json:"id" gorm:"primaryKey"`
	UserID     int64                    `json:"userId" gorm:"index;not null"`
	Title      string                   `json:"title" gorm:"not null"`
	Content    string                   `json:"content" gorm:"type:text;not null"`
	Tags       datatypes.JSONSlice[Tag] `json:"tags" gorm:"type:jsonb"`
	IsFavorite bool                     `json:"isFavorite" gorm:"not null;default:false"`
	CreatedAt  time.Time                `json:"createdAt"`
	UpdatedAt  time.Time                `json:"updatedAt"`

	NoteLifecycle `gorm:"embedded"`
}
