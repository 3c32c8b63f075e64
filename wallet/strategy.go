package wallet

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
)

// TxPayload is the backend-independent description of the transaction a
// caller wants signed and submitted.
type TxPayload struct {
	To       string
	Data     []byte
	Value    *big.Int
	GasLimit uint64
}

// ConnectStrategy is one connection primitive. A strategy either yields a
// non-empty account id, signals errTryNext, or fails the whole chain with
// a terminal error such as ErrUserRejected.
type ConnectStrategy struct {
	Name    string
	Connect func(ctx context.Context) (string, error)
}

// SignStrategy is one request shape for sign-and-submit; the first strategy
// to return a recognizable transaction hash wins.
type SignStrategy struct {
	Name string
	Sign func(ctx context.Context, account string, payload *TxPayload) (string, error)
}

// Backend is one wallet provider: an ordered set of connection and signing
// primitives behind a stable id.
type Backend interface {
	ID() string
	Name() string
	CanAutoConnect() bool
	ConnectStrategies() []ConnectStrategy
	SignStrategies() []SignStrategy
}

// ---- keystore backend ----

// keystoreBackend holds its own signing key (mnemonic-derived or KMS
// custody) and submits raw transactions through the node.
type keystoreBackend struct {
	signer Signer
	node   NodeClient
}

func (b *keystoreBackend) ID() string           { return "keystore" }
func (b *keystoreBackend) Name() string         { return "Keystore Wallet" }
func (b *keystoreBackend) CanAutoConnect() bool { return true }

func (b *keystoreBackend) ConnectStrategies() []ConnectStrategy {
	return []ConnectStrategy{
		{
			Name: "keystore-native",
			Connect: func(ctx context.Context) (string, error) {
				return b.signer.EthAddress().Hex(), nil
			},
		},
	}
}

func (b *keystoreBackend) SignStrategies() []SignStrategy {
	return []SignStrategy{
		{Name: "local-sign-raw-submit", Sign: b.signAndSubmitRaw},
		{
			Name: "remote-send-transaction",
			Sign: func(ctx context.Context, account string, payload *TxPayload) (string, error) {
				return b.node.SendTransaction(ctx, account, payload.To, payload.Data, payload.Value)
			},
		},
	}
}

func (b *keystoreBackend) signAndSubmitRaw(ctx context.Context, account string, payload *TxPayload) (string, error) {
	chainID, err := b.node.GetChainID()
	if err != nil {
		return "", errTryNext
	}

	nonce, err := b.node.GetPendingNonce(ctx, account)
	if err != nil {
		return "", &SubmissionError{Reason: "failed to fetch nonce: " + err.Error()}
	}

	gasPrice, err := b.node.SuggestGasPrice(ctx)
	if err != nil {
		return "", &SubmissionError{Reason: "failed to fetch gas price: " + err.Error()}
	}

	gasLimit := payload.GasLimit
	if gasLimit == 0 {
		gasLimit = 400000
	}

	to := addressOrZero(payload.To)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    valueOrZero(payload.Value),
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     payload.Data,
	})

	signer := types.LatestSignerForChainID(chainID)
	sig, err := b.signer.EthSign(signer.Hash(tx).Bytes())
	if err != nil {
		return "", ErrSignatureRejected
	}
	// the keystore signer normalizes v to 27/28; WithSignature wants 0/1
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	signedTx, err := tx.WithSignature(signer, sig)
	if err != nil {
		return "", &SubmissionError{Reason: "failed to attach signature: " + err.Error()}
	}

	if err := b.node.SendRawTransaction(ctx, signedTx); err != nil {
		return "", &SubmissionError{Reason: err.Error()}
	}

	return signedTx.Hash().Hex(), nil
}

// ---- node rpc backend ----

// nodeBackend is a provider reached over JSON-RPC that holds its own
// accounts; the same capability hides behind differently-named methods, so
// connection is a probe of known names in priority order.
type nodeBackend struct {
	node NodeClient
}

func (b *nodeBackend) ID() string           { return "node-rpc" }
func (b *nodeBackend) Name() string         { return "Node Wallet" }
func (b *nodeBackend) CanAutoConnect() bool { return true }

func (b *nodeBackend) ConnectStrategies() []ConnectStrategy {
	strategies := make([]ConnectStrategy, 0, len(accountMethods))
	for _, method := range accountMethods {
		method := method
		strategies = append(strategies, ConnectStrategy{
			Name: "probe-" + method,
			Connect: func(ctx context.Context) (string, error) {
				accounts, err := b.node.ListAccounts(ctx, method)
				if err != nil {
					if err == ErrUserRejected {
						return "", err
					}
					log.Debugf("[WALLET] Method %s not served: %s", method, err.Error())
					return "", errTryNext
				}
				if len(accounts) == 0 || accounts[0] == "" {
					return "", errTryNext
				}
				return accounts[0], nil
			},
		})
	}
	return strategies
}

func (b *nodeBackend) SignStrategies() []SignStrategy {
	return []SignStrategy{
		{
			Name: "remote-send-transaction",
			Sign: func(ctx context.Context, account string, payload *TxPayload) (string, error) {
				return b.node.SendTransaction(ctx, account, payload.To, payload.Data, payload.Value)
			},
		},
	}
}

// ---- relay backend ----

// relayBackend pairs with a remote wallet through a relay service; both
// connect and sign are bounded waits on the remote user.
type relayBackend struct {
	relay RelayClient
}

func (b *relayBackend) ID() string           { return "relay" }
func (b *relayBackend) Name() string         { return "Relay Pairing" }
func (b *relayBackend) CanAutoConnect() bool { return false }

func (b *relayBackend) ConnectStrategies() []ConnectStrategy {
	return []ConnectStrategy{
		{
			Name: "relay-pairing",
			Connect: func(ctx context.Context) (string, error) {
				return b.relay.Pair(ctx)
			},
		},
	}
}

func (b *relayBackend) SignStrategies() []SignStrategy {
	return []SignStrategy{
		{
			Name: "relay-request",
			Sign: func(ctx context.Context, account string, payload *TxPayload) (string, error) {
				return b.relay.RequestTransaction(ctx, account, payload.To, payload.Data, payload.Value)
			},
		},
	}
}

// ---- manual backend ----

// manualBackend carries a typed-in account identifier; it can observe but
// never sign.
type manualBackend struct {
	account string
}

func (b *manualBackend) ID() string           { return "manual" }
func (b *manualBackend) Name() string         { return "Manual Account" }
func (b *manualBackend) CanAutoConnect() bool { return false }

func (b *manualBackend) ConnectStrategies() []ConnectStrategy {
	return []ConnectStrategy{manualEntryStrategy(b.account)}
}

func (b *manualBackend) SignStrategies() []SignStrategy {
	return nil
}

// manualEntryStrategy is the last-resort primitive appended to every chain
// when a manual account is configured.
func manualEntryStrategy(account string) ConnectStrategy {
	return ConnectStrategy{
		Name: "manual-entry",
		Connect: func(ctx context.Context) (string, error) {
			if strings.TrimSpace(account) == "" {
				return "", errTryNext
			}
			return account, nil
		},
	}
}

func addressOrZero(hex string) common.Address {
	return common.HexToAddress(hex)
}

func valueOrZero(value *big.Int) *big.Int {
	if value == nil {
		return big.NewInt(0)
	}
	return value
}
