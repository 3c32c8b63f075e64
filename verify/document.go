package verify

import (
	"fmt"

	"github.com/dright-io/dright-core/models"
)

const (
	maxEvidenceFileBytes = 20 << 20 // 20 MiB
	maxEvidenceFiles     = 10
)

var allowedEvidenceTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
}

// EvidenceError reports why an uploaded file was refused before it touched
// the claim.
type EvidenceError struct {
	Name   string
	Reason string
}

func (e *EvidenceError) Error() string {
	return fmt.Sprintf("evidence %q rejected: %s", e.Name, e.Reason)
}

// ValidateEvidence checks declared type and size for every file before any
// of them is accepted onto a claim. All-or-nothing: one bad file refuses
// the batch so the claim never holds a partial upload.
func ValidateEvidence(files []models.EvidenceFile) error {
	if len(files) == 0 {
		return &EvidenceError{Reason: "no files provided"}
	}
	if len(files) > maxEvidenceFiles {
		return &EvidenceError{Reason: fmt.Sprintf("too many files, maximum is %d", maxEvidenceFiles)}
	}
	for _, file := range files {
		if file.Name == "" {
			return &EvidenceError{Reason: "file name is empty"}
		}
		if !allowedEvidenceTypes[file.ContentType] {
			return &EvidenceError{Name: file.Name, Reason: fmt.Sprintf("unsupported content type %q", file.ContentType)}
		}
		if file.SizeBytes <= 0 {
			return &EvidenceError{Name: file.Name, Reason: "declared size is empty"}
		}
		if file.SizeBytes > maxEvidenceFileBytes {
			return &EvidenceError{Name: file.Name, Reason: "declared size exceeds limit"}
		}
	}
	return nil
}
