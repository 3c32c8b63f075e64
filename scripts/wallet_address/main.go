package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dright-io/dright-core/wallet"
)

// Prints the keystore account for a configured wallet signer so the
// account can be funded before the service submits transactions.
func main() {
	mnemonic := os.Getenv("WALLET_MNEMONIC")
	kmsKeyName := os.Getenv("WALLET_GCP_KMS_KEY_NAME")

	var signer wallet.Signer
	var err error
	switch {
	case mnemonic != "":
		fmt.Println("Using mnemonic signer")
		signer, err = wallet.NewMnemonicSigner(mnemonic)
	case kmsKeyName != "":
		fmt.Println("Using GCP KMS signer: ", kmsKeyName)
		signer, err = wallet.NewGcpKmsSigner(kmsKeyName)
	default:
		log.Fatalf("WALLET_MNEMONIC or WALLET_GCP_KMS_KEY_NAME must be set")
	}
	if err != nil {
		log.Fatalf("failed to create signer: %v", err)
	}
	defer signer.Destroy()

	fmt.Println("Eth Address: ", signer.EthAddress())

	testDigest := make([]byte, 32)
	signature, err := signer.EthSign(testDigest)
	if err != nil {
		log.Fatalf("failed to sign test digest: %v", err)
	}
	fmt.Printf("Test Signature: %x\n", signature)
}
