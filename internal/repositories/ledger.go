package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
)

// weiDecimals is the number of decimal places between wei and ether.
const weiDecimals = 18

// EthLedger reads transaction receipts and balances from an Ethereum JSON-RPC
// endpoint. It never signs or sends transactions.
type EthLedger struct {
	client *ethclient.Client
}

func DialLedger(ctx context.Context, rawURL string) (*EthLedger, error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("dial ledger: %w", err)
	}
	return &EthLedger{client: client}, nil
}

// Confirmed reports whether the transaction was mined successfully. An unknown
// hash is not an error.
func (l *EthLedger) Confirmed(ctx context.Context, txHash string) (bool, error) {
	receipt, err := l.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return false, nil
		}
		return false, err
	}
	return receipt.Status == types.ReceiptStatusSuccessful, nil
}

// Balance returns the latest balance of address in ether.
func (l *EthLedger) Balance(ctx context.Context, address string) (decimal.Decimal, error) {
	wei, err := l.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(wei, -weiDecimals), nil
}

func (l *EthLedger) Close() {
	l.client.Close()
}
