package services

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rohits-web03/chainnotes/internal/models"
	"github.com/rohits-web03/chainnotes/internal/repositories"
	"github.com/shopspring/decimal"
)

// Ledger is a read-only view of the external chain.
type Ledger interface {
	Confirmed(ctx context.Context, txHash string) (bool, error)
	Balance(ctx context.Context, address string) (decimal.Decimal, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.BlockchainTransaction) error
	List(ctx context.Context, ownerID int64) ([]models.BlockchainTransaction, error)
	Summaries(ctx context.Context, ownerID int64) ([]models.ActionSummary, error)
}

type RecordInput struct {
	ItemID   int64  `json:"itemId" validate:"required,gt=0"`
	ItemType string `json:"itemType" validate:"required,oneof=note todo"`
	Action   string `json:"action" validate:"required,max=64"`
	Amount   string `json:"amount" validate:"required,numeric"`
	TxHash   string `json:"txHash" validate:"required"`
}

type Analytics struct {
	TotalCount  int64                  `json:"totalCount"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
	ByAction    []models.ActionSummary `json:"byAction"`
}

type Balance struct {
	Address string          `json:"address"`
	Balance decimal.Decimal `json:"balance"`
}

// BlockchainService records proof-of-existence transactions for notes and
// todos and aggregates them.
type BlockchainService struct {
	txs    TransactionStore
	notes  NoteStore
	todos  TodoStore
	ledger Ledger
	now    func() time.Time
}

// NewBlockchainService wires ledger records. ledger may be nil, in which case
// records are stored without on-chain confirmation and balance lookups are
// unavailable.
func NewBlockchainService(txs TransactionStore, notes NoteStore, todos TodoStore, ledger Ledger) *BlockchainService {
	return &BlockchainService{txs: txs, notes: notes, todos: todos, ledger: ledger, now: time.Now}
}

// normalizeTxHash accepts 32-byte hex hashes with or without 0x and returns
// the 0x-prefixed lowercase form.
func normalizeTxHash(raw string) (string, error) {
	h := strings.ToLower(strings.TrimSpace(raw))
	h = strings.TrimPrefix(h, "0x")
	if len(h) != 2*common.HashLength {
		return "", invalid("txHash", "txHash must be a 32-byte hex string")
	}
	if _, err := hex.DecodeString(h); err != nil {
		return "", invalid("txHash", "txHash must be a 32-byte hex string")
	}
	return common.HexToHash(h).Hex(), nil
}

func (s *BlockchainService) itemTitle(ctx context.Context, ownerID int64, itemType models.ItemType, itemID int64) (string, error) {
	if itemType == models.ItemTodo {
		todo, err := s.todos.FindOwned(ctx, ownerID, itemID)
		if err != nil {
			return "", storeErr("find todo", "todo", err)
		}
		return todo.Title, nil
	}

	note, err := s.notes.FindOwned(ctx, ownerID, itemID, models.NoteActive)
	if err != nil {
		return "", storeErr("find note", "note", err)
	}
	return note.Title, nil
}

func (s *BlockchainService) Record(ctx context.Context, ownerID int64, in RecordInput) (*models.BlockchainTransaction, error) {
	in.Action = strings.TrimSpace(in.Action)
	if err := check(in); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return nil, invalid("amount", "amount must be a decimal number")
	}
	if amount.IsNegative() {
		return nil, invalid("amount", "amount must not be negative")
	}

	hash, err := normalizeTxHash(in.TxHash)
	if err != nil {
		return nil, err
	}

	itemType := models.ItemType(in.ItemType)
	title, err := s.itemTitle(ctx, ownerID, itemType, in.ItemID)
	if err != nil {
		return nil, err
	}

	if s.ledger != nil {
		ok, err := s.ledger.Confirmed(ctx, hash)
		if err != nil {
			return nil, &StorageError{Op: "ledger lookup", Err: err}
		}
		if !ok {
			return nil, invalid("txHash", "transaction is not confirmed on the ledger")
		}
	}

	tx := &models.BlockchainTransaction{
		UserID:    ownerID,
		ItemID:    in.ItemID,
		ItemType:  itemType,
		Action:    in.Action,
		ItemTitle: title,
		Amount:    amount,
		TxHash:    hash,
		CreatedAt: s.now(),
	}
	err = s.txs.Create(ctx, tx)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, &ConflictError{Message: "transaction already recorded"}
	}
	if err != nil {
		return nil, &StorageError{Op: "record transaction", Err: err}
	}
	return tx, nil
}

func (s *BlockchainService) List(ctx context.Context, ownerID int64) ([]models.BlockchainTransaction, error) {
	txs, err := s.txs.List(ctx, ownerID)
	return txs, storeErr("list transactions", "transaction", err)
}

func (s *BlockchainService) Analytics(ctx context.Context, ownerID int64) (*Analytics, error) {
	sums, err := s.txs.Summaries(ctx, ownerID)
	if err != nil {
		return nil, &StorageError{Op: "summarize transactions", Err: err}
	}

	out := &Analytics{TotalAmount: decimal.Zero, ByAction: sums}
	if out.ByAction == nil {
		out.ByAction = []models.ActionSummary{}
	}
	for _, sum := range sums {
		out.TotalCount += sum.Count
		out.TotalAmount = out.TotalAmount.Add(sum.TotalAmount)
	}
	return out, nil
}

func (s *BlockchainService) Balance(ctx context.Context, address string) (*Balance, error) {
	if s.ledger == nil {
		return nil, &UnavailableError{Feature: "ledger"}
	}
	if !common.IsHexAddress(address) {
		return nil, invalid("address", "address must be a hex account address")
	}

	bal, err := s.ledger.Balance(ctx, address)
	if err != nil {
		return nil, &StorageError{Op: "ledger balance", Err: err}
	}
	return &Balance{Address: common.HexToAddress(address).Hex(), Balance: bal}, nil
}
