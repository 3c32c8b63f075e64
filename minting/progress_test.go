package minting

import (
	"testing"

	"github.com/dright-io/dright-core/app"
	appmocks "github.com/dright-io/dright-core/app/mocks"
	"github.com/dright-io/dright-core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func expectLatestRun(mockDB *appmocks.MockDatabase, rightId string, run models.MintingRun) {
	mockDB.EXPECT().FindOneAndSort(
		models.CollectionMintRuns,
		bson.M{"items.right_id": rightId},
		bson.M{"created_at": -1},
		mock.Anything,
	).Run(func(collection string, filter interface{}, sort interface{}, result interface{}) {
		*result.(*models.MintingRun) = run
	}).Return(nil)
}

func TestGetProgress(t *testing.T) {

	t.Run("No Run", func(t *testing.T) {
		mockDB := appmocks.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndSort(
			models.CollectionMintRuns,
			bson.M{"items.right_id": "right-1"},
			bson.M{"created_at": -1},
			mock.Anything,
		).Return(mongo.ErrNoDocuments)

		progress, err := GetProgress("right-1")

		assert.Nil(t, progress)
		assert.Equal(t, ErrRunNotFound, err)
	})

	t.Run("Partial Run", func(t *testing.T) {
		mockDB := appmocks.NewMockDatabase(t)
		app.DB = mockDB

		run := pendingTestRun("right-1")
		run.Status = models.RunStatusProcessing
		run.Items[0].Steps[0].Status = models.StepStatusCompleted
		run.Items[0].Steps[1].Status = models.StepStatusCompleted
		run.Items[0].Steps[2].Status = models.StepStatusProcessing
		expectLatestRun(mockDB, "right-1", run)

		progress, err := GetProgress("right-1")

		assert.Nil(t, err)
		assert.Equal(t, run.Id.Hex(), progress.RunId)
		assert.Equal(t, models.RunStatusProcessing, progress.Status)
		assert.Equal(t, 2, progress.StepIndex)
		assert.Equal(t, 4, progress.TotalSteps)
		assert.Equal(t, 0.5, progress.Completion)
	})

	t.Run("Batch Run Flattens All Items", func(t *testing.T) {
		mockDB := appmocks.NewMockDatabase(t)
		app.DB = mockDB

		run := pendingTestRun("right-1", "right-2")
		for i := range run.Items[0].Steps {
			run.Items[0].Steps[i].Status = models.StepStatusCompleted
		}
		expectLatestRun(mockDB, "right-2", run)

		progress, err := GetProgress("right-2")

		assert.Nil(t, err)
		assert.Equal(t, 4, progress.StepIndex)
		assert.Equal(t, 8, progress.TotalSteps)
		assert.Equal(t, 0.5, progress.Completion)
	})

	t.Run("Failed Run Carries Reason", func(t *testing.T) {
		mockDB := appmocks.NewMockDatabase(t)
		app.DB = mockDB

		run := pendingTestRun("right-1")
		run.Status = models.RunStatusError
		run.Terminal = true
		run.Error = "transaction reverted on chain"
		expectLatestRun(mockDB, "right-1", run)

		progress, err := GetProgress("right-1")

		assert.Nil(t, err)
		assert.Equal(t, models.RunStatusError, progress.Status)
		assert.Equal(t, "transaction reverted on chain", progress.Error)
		assert.Equal(t, 0.0, progress.Completion)
	})
}
