package wallet

import (
	"context"
	"math/big"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	log "github.com/sirupsen/logrus"
)

// EIP-1193 provider error code for an explicit user decline.
const rpcCodeUserRejected = 4001

// account discovery methods, probed in priority order; providers expose the
// same capability under different names.
var accountMethods = []string{
	"eth_requestAccounts",
	"eth_accounts",
	"personal_listAccounts",
}

// NodeClient is the JSON-RPC surface the wallet layer needs from a node or
// node-backed provider.
type NodeClient interface {
	ValidateNetwork() error
	GetChainID() (*big.Int, error)
	ListAccounts(ctx context.Context, method string) ([]string, error)
	GetPendingNonce(ctx context.Context, account string) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendRawTransaction(ctx context.Context, tx *types.Transaction) error
	SendTransaction(ctx context.Context, from string, to string, data []byte, value *big.Int) (string, error)
	GetTransactionReceipt(txHash string) (*types.Receipt, error)
}

type nodeClient struct {
	rpc    *rpc.Client
	client *ethclient.Client
}

var Node NodeClient = &nodeClient{}

func rpcTimeout() time.Duration {
	millis := app.Config.Ethereum.RPCTimeoutMillis
	if millis == 0 {
		millis = 10000
	}
	return time.Duration(millis) * time.Millisecond
}

func (c *nodeClient) GetChainID() (*big.Int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout())
	defer cancel()

	return c.client.ChainID(ctx)
}

// ListAccounts invokes one account discovery method by name. Providers that
// do not implement the method report a method-not-found error, which the
// caller treats as a signal to probe the next name.
func (c *nodeClient) ListAccounts(ctx context.Context, method string) ([]string, error) {
	var accounts []string
	err := c.rpc.CallContext(ctx, &accounts, method)
	if err != nil {
		if rpcErr, ok := err.(rpc.Error); ok && rpcErr.ErrorCode() == rpcCodeUserRejected {
			return nil, ErrUserRejected
		}
		return nil, err
	}
	return accounts, nil
}

func (c *nodeClient) GetPendingNonce(ctx context.Context, account string) (uint64, error) {
	return c.client.PendingNonceAt(ctx, common.HexToAddress(account))
}

func (c *nodeClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return c.client.SuggestGasPrice(ctx)
}

func (c *nodeClient) SendRawTransaction(ctx context.Context, tx *types.Transaction) error {
	return c.client.SendTransaction(ctx, tx)
}

// SendTransaction asks the node to sign and submit on our behalf via the
// standardized eth_sendTransaction call.
func (c *nodeClient) SendTransaction(ctx context.Context, from string, to string, data []byte, value *big.Int) (string, error) {
	arg := map[string]interface{}{
		"from": from,
		"to":   to,
		"data": hexutil.Bytes(data),
	}
	if value != nil && value.Sign() > 0 {
		arg["value"] = (*hexutil.Big)(value)
	}

	var txHash string
	err := c.rpc.CallContext(ctx, &txHash, "eth_sendTransaction", arg)
	if err != nil {
		if rpcErr, ok := err.(rpc.Error); ok && rpcErr.ErrorCode() == rpcCodeUserRejected {
			return "", ErrSignatureRejected
		}
		return "", err
	}
	return txHash, nil
}

func (c *nodeClient) GetTransactionReceipt(txHash string) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout())
	defer cancel()

	return c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
}

// ValidateNetwork dials the configured RPC endpoint and checks the chain id
// against config.
func (c *nodeClient) ValidateNetwork() error {
	log.Debugln("[NODE]", "Validating network")
	log.Debugln("[NODE]", "uri", app.Config.Ethereum.RPCURL)

	rpcClient, err := rpc.Dial(app.Config.Ethereum.RPCURL)
	if err != nil {
		return err
	}
	c.rpc = rpcClient
	c.client = ethclient.NewClient(rpcClient)

	chainID, err := c.GetChainID()
	if err != nil {
		return err
	}
	if chainID.String() != app.Config.Ethereum.ChainId {
		log.Warnln("[NODE]", "Chain id mismatch, expected", app.Config.Ethereum.ChainId, "got", chainID.String())
	}

	log.Infoln("[NODE]", "Connected to chain", chainID.String())
	return nil
}

// InitNode dials the configured node; fatal on failure, matching the rest
// of the init sequence.
func InitNode() {
	if err := Node.ValidateNetwork(); err != nil {
		log.Fatalln("[NODE]", "Failed to connect to node:", err)
	}
}
