package verify

import (
	"testing"

	"github.com/dright-io/dright-core/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateEvidence(t *testing.T) {

	validFile := models.EvidenceFile{
		Name:        "deed.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1024,
		StorageKey:  "uploads/deed.pdf",
	}

	t.Run("Valid Files", func(t *testing.T) {
		err := ValidateEvidence([]models.EvidenceFile{validFile})

		assert.Nil(t, err)
	})

	t.Run("No Files", func(t *testing.T) {
		err := ValidateEvidence(nil)

		assert.NotNil(t, err)
	})

	t.Run("Too Many Files", func(t *testing.T) {
		files := make([]models.EvidenceFile, maxEvidenceFiles+1)
		for i := range files {
			files[i] = validFile
		}

		err := ValidateEvidence(files)

		assert.NotNil(t, err)
	})

	t.Run("Unsupported Content Type", func(t *testing.T) {
		file := validFile
		file.ContentType = "application/x-msdownload"

		err := ValidateEvidence([]models.EvidenceFile{file})

		assert.NotNil(t, err)
		var evidenceErr *EvidenceError
		assert.ErrorAs(t, err, &evidenceErr)
		assert.Equal(t, file.Name, evidenceErr.Name)
	})

	t.Run("Oversized File", func(t *testing.T) {
		file := validFile
		file.SizeBytes = maxEvidenceFileBytes + 1

		err := ValidateEvidence([]models.EvidenceFile{file})

		assert.NotNil(t, err)
	})

	t.Run("One Bad File Refuses Batch", func(t *testing.T) {
		bad := validFile
		bad.SizeBytes = 0

		err := ValidateEvidence([]models.EvidenceFile{validFile, bad})

		assert.NotNil(t, err)
	})
}
