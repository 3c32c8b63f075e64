package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionMintRuns = "mint_runs"
)

// run states
const (
	RunStatusPending    = "pending"
	RunStatusProcessing = "processing"
	RunStatusCompleted  = "completed"
	RunStatusError      = "error"
)

// step states
const (
	StepStatusPending    = "pending"
	StepStatusProcessing = "processing"
	StepStatusCompleted  = "completed"
	StepStatusError      = "error"
)

// step identifiers, in execution order
const (
	StepBuildPayload  = "build_payload"
	StepSignAndSubmit = "sign_and_submit"
	StepAwaitReceipt  = "await_receipt"
	StepRecordToken   = "record_token"
)

// MintingStep is one unit of a run. Steps complete strictly in order and a
// run holds at most one processing step at a time.
type MintingStep struct {
	Id              string `bson:"id" json:"id"`
	Title           string `bson:"title" json:"title"`
	Status          string `bson:"status" json:"status"`
	TransactionHash string `bson:"transaction_hash,omitempty" json:"transaction_hash,omitempty"`
	Error           string `bson:"error,omitempty" json:"error,omitempty"`
}

// MintingRunItem is one asset inside a run; single mints have exactly one.
// Items execute sequentially so a partial-batch failure leaves a clean
// boundary.
type MintingRunItem struct {
	RightId string        `bson:"right_id" json:"right_id"`
	Steps   []MintingStep `bson:"steps" json:"steps"`
	TokenId string        `bson:"token_id,omitempty" json:"token_id,omitempty"`
}

// MintingRun is the ordered execution that turns verified Rights into
// on-chain tokens. Terminal once any step errors or the final step of the
// final item completes.
type MintingRun struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RightId   string              `bson:"right_id" json:"right_id"`
	SessionId string              `bson:"session_id" json:"session_id"`
	Status    string              `bson:"status" json:"status"`
	Items     []MintingRunItem    `bson:"items" json:"items"`
	ItemIndex int                 `bson:"item_index" json:"item_index"`
	Error     string              `bson:"error,omitempty" json:"error,omitempty"`
	// Terminal mirrors the status; it backs the partial unique index that
	// enforces at most one live run per right.
	Terminal  bool      `bson:"terminal" json:"terminal"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (r *MintingRun) IsTerminal() bool {
	return r.Status == RunStatusCompleted || r.Status == RunStatusError
}

// NonTerminalRunStatuses are the states a live run can be in; at most one
// run per right may hold any of them.
var NonTerminalRunStatuses = []string{
	RunStatusPending,
	RunStatusProcessing,
}

// NewMintingSteps returns a fresh pending step list for one item.
func NewMintingSteps() []MintingStep {
	return []MintingStep{
		{Id: StepBuildPayload, Title: "Build token payload", Status: StepStatusPending},
		{Id: StepSignAndSubmit, Title: "Sign and submit transaction", Status: StepStatusPending},
		{Id: StepAwaitReceipt, Title: "Await network receipt", Status: StepStatusPending},
		{Id: StepRecordToken, Title: "Record token on right", Status: StepStatusPending},
	}
}

// RunProgress is the polling-friendly snapshot served by the progress
// reporter. Steps are deep copies so readers never observe a torn list.
type RunProgress struct {
	RunId       string        `json:"run_id"`
	RightId     string        `json:"right_id"`
	Status      string        `json:"status"`
	Steps       []MintingStep `json:"steps"`
	StepIndex   int           `json:"step_index"`
	TotalSteps  int           `json:"total_steps"`
	Completion  float64       `json:"completion"`
	Error       string        `json:"error,omitempty"`
	LastUpdated time.Time     `json:"last_updated"`
}
