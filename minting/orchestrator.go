package minting

import (
	"sort"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/catalog"
	"github.com/dright-io/dright-core/listing"
	"github.com/dright-io/dright-core/models"
	"github.com/dright-io/dright-core/wallet"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Orchestrator admits minting runs. It owns the preconditions and the
// at-most-one-live-run guarantee; execution belongs to the MintRunner.
type Orchestrator struct {
	catalog catalog.Client
	wallet  *wallet.Manager
}

func NewOrchestrator(manager *wallet.Manager) *Orchestrator {
	return &Orchestrator{
		catalog: catalog.Catalog,
		wallet:  manager,
	}
}

// StartMinting admits a run for a single right and returns it immediately
// in pending state. Calling again while the run is live returns the same
// run, never a second one.
func (x *Orchestrator) StartMinting(rightId string) (*models.MintingRun, error) {
	return x.start([]string{rightId})
}

// StartBatch admits one run covering every listed right. Items execute
// sequentially in the given order; a member with a live run blocks the
// whole batch.
func (x *Orchestrator) StartBatch(rightIds []string) (*models.MintingRun, error) {
	if len(rightIds) == 0 {
		return nil, ErrEmptyBatch
	}
	return x.start(rightIds)
}

func (x *Orchestrator) start(rightIds []string) (*models.MintingRun, error) {
	log.Debug("[MINT] Starting minting run for rights: ", rightIds)

	connection := x.wallet.Restore()
	if !connection.IsValid() {
		return nil, ErrNoWalletConnected
	}

	for _, rightId := range rightIds {
		right, err := x.catalog.GetRight(rightId)
		if err != nil {
			log.Error("[MINT] Error fetching right from catalog: ", err)
			return nil, err
		}
		if !right.IsVerified() {
			log.Info("[MINT] Right is not verified: ", rightId)
			return nil, ErrNotVerified
		}
		if err := listing.Validate(right); err != nil {
			return nil, err
		}
	}

	// locks are taken in sorted order so two overlapping batches never
	// deadlock each other
	lockIds, err := x.lockRights(rightIds)
	if err != nil {
		// the holder is likely mid-admission; its run, once visible, is
		// the answer for this caller too
		if existing, findErr := x.findLiveRun(rightIds); findErr == nil && existing != nil {
			log.Info("[MINT] Lock held, surfacing live run for right: ", existing.RightId)
			return existing, nil
		}
		return nil, err
	}
	defer x.unlockRights(lockIds)

	if existing, err := x.findLiveRun(rightIds); err != nil {
		return nil, err
	} else if existing != nil {
		log.Info("[MINT] Live run already exists for right: ", existing.RightId)
		return existing, nil
	}

	items := make([]models.MintingRunItem, 0, len(rightIds))
	for _, rightId := range rightIds {
		items = append(items, models.MintingRunItem{
			RightId: rightId,
			Steps:   models.NewMintingSteps(),
		})
	}

	now := time.Now()
	run := &models.MintingRun{
		RightId:   rightIds[0],
		SessionId: connection.SessionId,
		Status:    models.RunStatusPending,
		Items:     items,
		ItemIndex: 0,
		Terminal:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	insertedId, err := app.DB.InsertOne(models.CollectionMintRuns, run)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// lost the race to a concurrent start; surface the winner
			log.Warn("[MINT] Concurrent run creation for right: ", run.RightId)
			if existing, findErr := x.findLiveRun(rightIds); findErr == nil && existing != nil {
				return existing, nil
			}
		}
		log.Error("[MINT] Error inserting run: ", err)
		return nil, err
	}
	if oid, ok := insertedId.(primitive.ObjectID); ok {
		run.Id = &oid
	}

	log.Info("[MINT] Created minting run for rights: ", rightIds)
	return run, nil
}

func (x *Orchestrator) lockRights(rightIds []string) ([]string, error) {
	ordered := append([]string{}, rightIds...)
	sort.Strings(ordered)

	lockIds := []string{}
	for _, rightId := range ordered {
		lockId, err := app.DB.XLock("mint/" + rightId)
		if err != nil {
			log.Error("[MINT] Error locking mint resource: ", err)
			x.unlockRights(lockIds)
			return nil, err
		}
		lockIds = append(lockIds, lockId)
	}
	return lockIds, nil
}

func (x *Orchestrator) unlockRights(lockIds []string) {
	for _, lockId := range lockIds {
		if err := app.DB.Unlock(lockId); err != nil {
			log.Error("[MINT] Error unlocking mint resource: ", err)
		}
	}
}

// findLiveRun returns the non-terminal run covering any of the rights, or
// nil when none exists.
func (x *Orchestrator) findLiveRun(rightIds []string) (*models.MintingRun, error) {
	filter := bson.M{
		"terminal":       false,
		"items.right_id": bson.M{"$in": rightIds},
	}

	var run models.MintingRun
	err := app.DB.FindOne(models.CollectionMintRuns, filter, &run)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Error("[MINT] Error finding live run: ", err)
		return nil, err
	}
	return &run, nil
}
