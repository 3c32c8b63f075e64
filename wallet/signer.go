package wallet

import (
	"github.com/ethereum/go-ethereum/common"
)

// Signer abstracts custody of the keystore backend's signing key: either a
// locally derived mnemonic key or a GCP KMS custody key.
type Signer interface {
	EthSign(data []byte) ([]byte, error)
	EthAddress() common.Address
	Destroy()
}
