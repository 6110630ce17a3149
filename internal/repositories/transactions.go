package repositories

import (
	"context"

	"github.com/rohits-web03/chainnotes/internal/models"
	"gorm.io/gorm"
)

// TransactionRepository stores ledger records. There is no update path.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.BlockchainTransaction) error {
	return translate(r.db.WithContext(ctx).Create(tx).Error)
}

func (r *TransactionRepository) List(ctx context.Context, ownerID int64) ([]models.BlockchainTransaction, error) {
	var txs []models.BlockchainTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, translate(err)
	}
	return txs, nil
}

// Summaries groups the owner's records by action label.
func (r *TransactionRepository) Summaries(ctx context.Context, ownerID int64) ([]models.ActionSummary, error) {
	var out []models.ActionSummary
	err := r.db.WithContext(ctx).
		Model(&models.BlockchainTransaction{}).
		Select("action, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount").
		Where("user_id = ?", ownerID).
		Group("action").
		Order("action").
		Scan(&out).Error
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}
