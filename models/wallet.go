package models

import "time"

// wallet backend identifiers
const (
	BackendKeystore = "keystore"
	BackendNodeRPC  = "node-rpc"
	BackendRelay    = "relay"
	BackendManual   = "manual"
)

// WalletProvider describes one detected wallet backend.
type WalletProvider struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	CanAutoConnect bool   `json:"can_auto_connect"`
}

// WalletConnection is the ephemeral session state for one connected wallet.
// It is persisted under a well-known key so a session survives a reload;
// malformed persisted records are discarded, never surfaced as errors.
type WalletConnection struct {
	SessionId   string    `json:"session_id"`
	BackendId   string    `json:"backend_id"`
	AccountId   string    `json:"account_id"`
	NetworkId   string    `json:"network_id"`
	Connected   bool      `json:"connected"`
	ConnectedAt time.Time `json:"connected_at"`
}

// IsValid reports whether a restored record has the shape of a live
// connection.
func (c *WalletConnection) IsValid() bool {
	return c != nil && c.SessionId != "" && c.BackendId != "" && c.AccountId != "" && c.Connected
}

// receipt statuses observed from the network
const (
	ReceiptStatusPending = "pending"
	ReceiptStatusSuccess = "success"
	ReceiptStatusFailed  = "failed"
)

// SubmitResult is the outcome of a sign-and-submit request.
type SubmitResult struct {
	TransactionHash string `json:"transaction_hash"`
	ReceiptStatus   string `json:"receipt_status"`
}
