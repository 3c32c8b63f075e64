package minting

import (
	"context"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/wallet"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/googleapis/gax-go/v2"
	log "github.com/sirupsen/logrus"
)

const (
	defaultMaxReceiptPolls    = 60
	defaultReceiptPollMillis  = 3000
	defaultReceiptPollMaxSecs = 30
)

// awaitReceipt polls the network until the transaction has a mined receipt
// or the bounded poll budget is exhausted. Polling backs off but never
// beyond the configured ceiling; a timeout terminates the run rather than
// waiting forever on a stuck transaction.
func awaitReceipt(node wallet.NodeClient, txHash string) (*types.Receipt, error) {
	maxPolls := app.Config.Ethereum.MaxReceiptPolls
	if maxPolls <= 0 {
		maxPolls = defaultMaxReceiptPolls
	}
	pollMillis := app.Config.Ethereum.ReceiptPollMillis
	if pollMillis <= 0 {
		pollMillis = defaultReceiptPollMillis
	}
	pollMaxSecs := app.Config.Ethereum.ReceiptPollMaxSecs
	if pollMaxSecs <= 0 {
		pollMaxSecs = defaultReceiptPollMaxSecs
	}

	backoff := gax.Backoff{
		Initial:    time.Duration(pollMillis) * time.Millisecond,
		Max:        time.Duration(pollMaxSecs) * time.Second,
		Multiplier: 1.5,
	}

	for i := int64(0); i < maxPolls; i++ {
		receipt, err := node.GetTransactionReceipt(txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil {
			log.Debug("[MINT] Receipt not available yet: ", txHash, " error: ", err)
		}
		if err := gax.Sleep(context.Background(), backoff.Pause()); err != nil {
			return nil, err
		}
	}

	log.Warn("[MINT] Receipt polling exhausted for tx: ", txHash)
	return nil, ErrReceiptTimeout
}
