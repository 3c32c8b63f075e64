package minting

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/models"
	"github.com/dright-io/dright-core/wallet"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

const mintGasLimit = uint64(400000)

const tokenAbiJSON = `[
	{
		"name": "mintRight",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{ "name": "to", "type": "address" },
			{ "name": "rightId", "type": "string" },
			{ "name": "tokenURI", "type": "string" }
		],
		"outputs": [
			{ "name": "tokenId", "type": "uint256" }
		]
	}
]`

var tokenAbi = mustTokenAbi()

func mustTokenAbi() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(tokenAbiJSON))
	if err != nil {
		panic(fmt.Sprintf("invalid token abi: %s", err.Error()))
	}
	return parsed
}

// transferTopic is the ERC-721 Transfer event signature; mints emit it with
// the zero address as sender and the token id as the third indexed topic.
var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// MetadataURI is the canonical token metadata location for a right. The
// catalog serves it; the chain only stores the pointer.
func MetadataURI(rightId string) string {
	return strings.TrimSuffix(app.Config.Catalog.BaseURL, "/") + "/rights/" + rightId + "/metadata"
}

// BuildMintPayload packs the mint call for a verified right. The recipient
// is the connected wallet account, never the catalog owner field, so the
// token lands in the wallet that signed for it.
func BuildMintPayload(right *models.Right, account string) (*wallet.TxPayload, error) {
	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("invalid recipient account: %s", account)
	}
	data, err := tokenAbi.Pack("mintRight", common.HexToAddress(account), right.Id, MetadataURI(right.Id))
	if err != nil {
		return nil, err
	}
	return &wallet.TxPayload{
		To:       app.Config.Ethereum.TokenContract,
		Data:     data,
		Value:    big.NewInt(0),
		GasLimit: mintGasLimit,
	}, nil
}

// TokenIdFromReceipt extracts the minted token id from the Transfer event
// emitted by the token contract. Returns empty when no mint event is found;
// the run records the transaction hash either way.
func TokenIdFromReceipt(receipt *types.Receipt) string {
	contract := common.HexToAddress(app.Config.Ethereum.TokenContract)
	for _, logEntry := range receipt.Logs {
		if logEntry.Address != contract {
			continue
		}
		if len(logEntry.Topics) != 4 || logEntry.Topics[0] != transferTopic {
			continue
		}
		if logEntry.Topics[1] != (common.Hash{}) {
			continue
		}
		return new(big.Int).SetBytes(logEntry.Topics[3].Bytes()).String()
	}
	return ""
}
