package minting

import (
	"github.com/dright-io/dright-core/models"

	"github.com/dright-io/dright-core/app"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProgress returns a polling-friendly snapshot of the latest run
// covering the right. Steps are copied, so the caller can hold the
// snapshot while the runner keeps writing. The step index counts completed
// steps across all items and only ever grows.
func GetProgress(rightId string) (*models.RunProgress, error) {
	filter := bson.M{"items.right_id": rightId}

	var run models.MintingRun
	err := app.DB.FindOneAndSort(models.CollectionMintRuns, filter, bson.M{"created_at": -1}, &run)
	if err == mongo.ErrNoDocuments {
		return nil, ErrRunNotFound
	}
	if err != nil {
		log.Error("[MINT] Error finding run for progress: ", err)
		return nil, err
	}

	return snapshot(&run), nil
}

func snapshot(run *models.MintingRun) *models.RunProgress {
	steps := []models.MintingStep{}
	completed := 0
	for _, item := range run.Items {
		for _, step := range item.Steps {
			steps = append(steps, step)
			if step.Status == models.StepStatusCompleted {
				completed++
			}
		}
	}

	total := len(steps)
	completion := 0.0
	if total > 0 {
		completion = float64(completed) / float64(total)
	}

	runId := ""
	if run.Id != nil {
		runId = run.Id.Hex()
	}

	return &models.RunProgress{
		RunId:       runId,
		RightId:     run.RightId,
		Status:      run.Status,
		Steps:       steps,
		StepIndex:   completed,
		TotalSteps:  total,
		Completion:  completion,
		Error:       run.Error,
		LastUpdated: run.UpdatedAt,
	}
}
