package minting

import (
	"errors"
	"testing"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/models"
	walletmocks "github.com/dright-io/dright-core/wallet/mocks"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
)

func fastPollConfig() {
	app.Config = models.Config{}
	app.Config.Ethereum.MaxReceiptPolls = 3
	app.Config.Ethereum.ReceiptPollMillis = 1
	app.Config.Ethereum.ReceiptPollMaxSecs = 1
}

func TestAwaitReceipt(t *testing.T) {

	t.Run("Receipt On Later Poll", func(t *testing.T) {
		fastPollConfig()
		mockNode := walletmocks.NewMockNodeClient(t)

		polls := 0
		mockNode.EXPECT().GetTransactionReceipt(testTxHash).
			RunAndReturn(func(txHash string) (*types.Receipt, error) {
				polls++
				if polls < 3 {
					return nil, errors.New("not found")
				}
				return &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil
			})

		receipt, err := awaitReceipt(mockNode, testTxHash)

		assert.Nil(t, err)
		assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
		assert.Equal(t, 3, polls)
	})

	t.Run("Poll Budget Exhausted", func(t *testing.T) {
		fastPollConfig()
		mockNode := walletmocks.NewMockNodeClient(t)
		mockNode.EXPECT().GetTransactionReceipt(testTxHash).
			Return(nil, errors.New("not found"))

		receipt, err := awaitReceipt(mockNode, testTxHash)

		assert.Nil(t, receipt)
		assert.Equal(t, ErrReceiptTimeout, err)
	})
}
