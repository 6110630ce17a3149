package models

import (
	"cmp"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities low < medium < high.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type Todo struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	UserID      int64      `json:"userId" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	Priority    Priority   `json:"priority" gorm:"type:text;not null;default:medium"`
	DueDate     *Date      `json:"dueDate" gorm:"type:date"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CompareTodos is the listing order: incomplete first, then due date ascending
// with undated todos last, then priority high to low, then newest first.
func CompareTodos(a, b Todo) int {
	if a.Completed != b.Completed {
		if a.Completed {
			return 1
		}
		return -1
	}

	switch {
	case a.DueDate == nil && b.DueDate != nil:
		return 1
	case a.DueDate != nil && b.DueDate == nil:
		return -1
	case a.DueDate != nil && b.DueDate != nil:
		if c := a.DueDate.Time().Compare(b.DueDate.Time()); c != 0 {
			return c
		}
	}

	if c := cmp.Compare(b.Priority.Rank(), a.Priority.Rank()); c != 0 {
		return c
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}
