package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
)

const relayPollInterval = 2 * time.Second

// relay pairing/request states
const (
	relayStatusPending  = "pending"
	relayStatusApproved = "approved"
	relayStatusRejected = "rejected"
)

// RelayClient speaks to a relay service that brokers pairing and signature
// requests with a remote wallet. Both operations are bounded waits: the
// remote wallet may approve, reject, or never answer.
type RelayClient interface {
	Pair(ctx context.Context) (string, error)
	RequestTransaction(ctx context.Context, account string, to string, data []byte, value *big.Int) (string, error)
}

type httpRelayClient struct {
	baseURL string
	client  *http.Client
}

func NewRelayClient(baseURL string) RelayClient {
	return &httpRelayClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

type relayRecord struct {
	Id      string `json:"id"`
	Status  string `json:"status"`
	Account string `json:"account,omitempty"`
	TxHash  string `json:"tx_hash,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func (c *httpRelayClient) post(ctx context.Context, path string, body interface{}) (*relayRecord, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *httpRelayClient) get(ctx context.Context, path string) (*relayRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *httpRelayClient) do(req *http.Request) (*relayRecord, error) {
	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("relay: unexpected status %d: %s", res.StatusCode, string(body))
	}

	var record relayRecord
	if err := json.NewDecoder(res.Body).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// await polls one relay record until it leaves pending or the context ends.
func (c *httpRelayClient) await(ctx context.Context, path string) (*relayRecord, error) {
	for {
		record, err := c.get(ctx, path)
		if err == nil && record.Status != relayStatusPending {
			return record, nil
		}
		if err != nil {
			log.Debug("[RELAY] Error polling relay: ", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(relayPollInterval):
		}
	}
}

// Pair runs the pairing handshake: create a pairing, then poll it until the
// remote wallet approves or declines, or the caller's deadline passes.
func (c *httpRelayClient) Pair(ctx context.Context) (string, error) {
	pairing, err := c.post(ctx, "/v1/pairings", map[string]string{
		"chain_id": app.Config.Ethereum.ChainId,
	})
	if err != nil {
		return "", err
	}
	log.Debug("[RELAY] Created pairing: ", pairing.Id)

	record, err := c.await(ctx, "/v1/pairings/"+pairing.Id)
	if err != nil {
		// only an elapsed deadline is a timeout; a cancelled caller
		// abandoned the flow and hears that back
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrConnectTimeout
		}
		return "", err
	}

	if record.Status == relayStatusRejected {
		return "", ErrUserRejected
	}
	if record.Account == "" {
		return "", ErrWalletUnavailable
	}
	return record.Account, nil
}

// RequestTransaction asks the paired wallet to sign and submit; returns the
// transaction hash on approval.
func (c *httpRelayClient) RequestTransaction(ctx context.Context, account string, to string, data []byte, value *big.Int) (string, error) {
	body := map[string]interface{}{
		"account": account,
		"to":      to,
		"data":    hexutil.Bytes(data).String(),
	}
	if value != nil && value.Sign() > 0 {
		body["value"] = (*hexutil.Big)(value).String()
	}

	request, err := c.post(ctx, "/v1/requests", body)
	if err != nil {
		return "", err
	}
	log.Debug("[RELAY] Created signature request: ", request.Id)

	record, err := c.await(ctx, "/v1/requests/"+request.Id)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", &SubmissionError{Reason: "signature request timed out"}
		}
		return "", err
	}

	if record.Status == relayStatusRejected {
		return "", ErrSignatureRejected
	}
	if record.TxHash == "" {
		return "", &SubmissionError{Reason: "relay returned no transaction hash"}
	}
	return record.TxHash, nil
}
