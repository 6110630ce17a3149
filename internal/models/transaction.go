package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemType string

const (
	ItemNote ItemType = "note"
	ItemTodo ItemType = "todo"
)

// BlockchainTransaction links a note or todo action to a ledger transaction.
// Rows are append-only.
type BlockchainTransaction struct {
	ID        int64           `json:"id" gorm:"primaryKey"`
	UserID    int64           `json:"userId" gorm:"index;not null"`
	ItemID    int64           `json:"itemId" gorm:"not null"`
	ItemType  ItemType        `json:"itemType" gorm:"type:text;not null"`
	Action    string          `json:"action" gorm:"not null"`
	ItemTitle string          `json:"itemTitle"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:numeric(30,6);not null"`
	TxHash    string          `json:"txHash" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ActionSummary aggregates a user's ledger records for one action label.
type ActionSummary struct {
	Action      string          `json:"action"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
