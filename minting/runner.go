package minting

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/catalog"
	"github.com/dright-io/dright-core/models"
	"github.com/dright-io/dright-core/wallet"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const MintRunnerName = "mint-runner"

// MintRunner executes admitted runs, oldest first, one run per tick. A run
// in flight is never cancelled; once a transaction is submitted the runner
// sees it through to a terminal state.
type MintRunner struct {
	catalog catalog.Client
	wallet  *wallet.Manager
	node    wallet.NodeClient

	mu          sync.RWMutex
	lastRightId string
}

func NewMintRunner(manager *wallet.Manager) *MintRunner {
	return &MintRunner{
		catalog: catalog.Catalog,
		wallet:  manager,
		node:    wallet.Node,
	}
}

func (x *MintRunner) Run() {
	run, err := x.nextRun()
	if err != nil {
		log.Error("[MINT] Error finding next run: ", err)
		return
	}
	if run == nil {
		return
	}

	// execution is exclusive per run; an instance that loses the lock skips
	// the run and picks up the queue again next tick
	lockId, err := app.DB.XLock(runResource(run))
	if err != nil {
		log.Debug("[MINT] Run is locked elsewhere: ", run.Id.Hex())
		return
	}
	defer func() {
		if err := app.DB.Unlock(lockId); err != nil {
			log.Error("[MINT] Error unlocking run: ", err)
		}
	}()

	// re-read under the lock; the previous holder may have finished it
	run, err = x.reloadRun(run.Id)
	if err != nil {
		log.Error("[MINT] Error reloading run: ", err)
		return
	}
	if run == nil {
		return
	}

	x.mu.Lock()
	x.lastRightId = run.RightId
	x.mu.Unlock()

	x.executeRun(run)
}

func runResource(run *models.MintingRun) string {
	return models.CollectionMintRuns + "/" + run.Id.Hex()
}

// reloadRun fetches the run again if it is still live, nil otherwise.
func (x *MintRunner) reloadRun(runId *primitive.ObjectID) (*models.MintingRun, error) {
	filter := bson.M{"_id": runId, "terminal": false}

	var run models.MintingRun
	err := app.DB.FindOne(models.CollectionMintRuns, filter, &run)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (x *MintRunner) Status() models.RunnerStatus {
	pending, err := app.DB.CountDocuments(models.CollectionMintRuns, bson.M{"terminal": false})
	if err != nil {
		log.Error("[MINT] Error counting pending runs: ", err)
	}

	account := ""
	if connection := x.wallet.Restore(); connection.IsValid() {
		account = connection.AccountId
	}

	x.mu.RLock()
	lastRightId := x.lastRightId
	x.mu.RUnlock()

	return models.RunnerStatus{
		PendingRuns:   strconv.FormatInt(pending, 10),
		ChainId:       app.Config.Ethereum.ChainId,
		LastRightId:   lastRightId,
		WalletAccount: account,
	}
}

// nextRun returns the oldest live run, or nil when the queue is empty.
func (x *MintRunner) nextRun() (*models.MintingRun, error) {
	var run models.MintingRun
	err := app.DB.FindOneAndSort(
		models.CollectionMintRuns,
		bson.M{"terminal": false},
		bson.M{"created_at": 1},
		&run,
	)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (x *MintRunner) executeRun(run *models.MintingRun) {
	log.Info("[MINT] Executing run: ", run.Id.Hex(), " right: ", run.RightId)

	connection := x.wallet.Restore()
	if !connection.IsValid() {
		x.failRun(run, ErrNoWalletConnected.Error())
		return
	}

	if run.Status == models.RunStatusPending {
		run.Status = models.RunStatusProcessing
		x.persistRun(run)
	}

	// items execute strictly in order; a failed item ends the run at a
	// clean boundary
	for run.ItemIndex < len(run.Items) {
		if err := x.executeItem(run, run.ItemIndex, connection.AccountId); err != nil {
			x.failRun(run, err.Error())
			return
		}
		run.ItemIndex++
		x.persistRun(run)
	}

	run.Status = models.RunStatusCompleted
	run.Terminal = true
	x.persistRun(run)
	log.Info("[MINT] Run completed: ", run.Id.Hex())
}

func (x *MintRunner) executeItem(run *models.MintingRun, itemIdx int, account string) error {
	item := &run.Items[itemIdx]

	var payload *wallet.TxPayload
	var receipt *types.Receipt

	for stepIdx := range item.Steps {
		step := &item.Steps[stepIdx]
		if step.Status == models.StepStatusCompleted {
			continue
		}

		step.Status = models.StepStatusProcessing
		x.persistRun(run)

		var err error
		switch step.Id {
		case models.StepBuildPayload:
			payload, err = x.buildPayload(item.RightId, account)

		case models.StepSignAndSubmit:
			if payload == nil {
				// resuming after a restart; the completed build step
				// carries no state, so rebuild
				payload, err = x.buildPayload(item.RightId, account)
			}
			if err == nil {
				var result *models.SubmitResult
				result, err = x.wallet.SignAndSubmit(context.Background(), x.wallet.Restore(), payload)
				if err == nil {
					step.TransactionHash = result.TransactionHash
				}
			}

		case models.StepAwaitReceipt:
			txHash := x.submittedTxHash(item)
			receipt, err = awaitReceipt(x.node, txHash)
			if err == nil && receipt.Status != types.ReceiptStatusSuccessful {
				err = &wallet.SubmissionError{Reason: "transaction reverted on chain"}
			}

		case models.StepRecordToken:
			txHash := x.submittedTxHash(item)
			if receipt == nil {
				// resume path; the receipt was already observed once
				receipt, err = x.node.GetTransactionReceipt(txHash)
			}
			if err == nil {
				err = x.recordToken(item, txHash, receipt)
			}
		}

		if err != nil {
			log.Error("[MINT] Step failed: ", step.Id, " right: ", item.RightId, " error: ", err)
			step.Status = models.StepStatusError
			step.Error = err.Error()
			return err
		}

		step.Status = models.StepStatusCompleted
		x.persistRun(run)
		log.Debug("[MINT] Step completed: ", step.Id, " right: ", item.RightId)
	}

	return nil
}

func (x *MintRunner) buildPayload(rightId string, account string) (*wallet.TxPayload, error) {
	right, err := x.catalog.GetRight(rightId)
	if err != nil {
		return nil, err
	}
	if !right.IsVerified() {
		return nil, ErrNotVerified
	}
	return BuildMintPayload(right, account)
}

func (x *MintRunner) submittedTxHash(item *models.MintingRunItem) string {
	for _, step := range item.Steps {
		if step.Id == models.StepSignAndSubmit {
			return step.TransactionHash
		}
	}
	return ""
}

// recordToken writes the minted token back onto the catalog record. Unlike
// the status mirror during verification, a catalog failure here fails the
// step; a minted token with no record would be invisible to the owner.
func (x *MintRunner) recordToken(item *models.MintingRunItem, txHash string, receipt *types.Receipt) error {
	tokenId := TokenIdFromReceipt(receipt)
	if tokenId == "" {
		log.Warn("[MINT] No transfer event found in receipt for right: ", item.RightId)
	}
	metadataURI := MetadataURI(item.RightId)

	patch := &models.RightPatch{
		TokenId:         &tokenId,
		TransactionHash: &txHash,
		MetadataURI:     &metadataURI,
	}
	if _, err := x.catalog.UpdateRight(item.RightId, patch); err != nil {
		return err
	}

	item.TokenId = tokenId
	return nil
}

func (x *MintRunner) failRun(run *models.MintingRun, reason string) {
	run.Status = models.RunStatusError
	run.Terminal = true
	run.Error = reason
	x.persistRun(run)
	log.Warn("[MINT] Run failed: ", run.Id.Hex(), " reason: ", reason)
}

func (x *MintRunner) persistRun(run *models.MintingRun) {
	run.UpdatedAt = time.Now()

	filter := bson.M{"_id": run.Id}
	update := bson.M{
		"$set": bson.M{
			"status":     run.Status,
			"items":      run.Items,
			"item_index": run.ItemIndex,
			"error":      run.Error,
			"terminal":   run.Terminal,
			"updated_at": run.UpdatedAt,
		},
	}
	if err := app.DB.UpdateOne(models.CollectionMintRuns, filter, update); err != nil {
		log.Error("[MINT] Error persisting run: ", err)
	}
}
