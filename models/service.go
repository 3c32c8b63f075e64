package models

import (
	"sync"
	"time"
)

type Service interface {
	Start()
	Health() ServiceHealth
	Stop()
}

// Runner is a single unit of periodic work driven by a RunnerService.
type Runner interface {
	Run()
	Status() RunnerStatus
}

type RunnerStatus struct {
	PendingRuns   string `bson:"pending_runs" json:"pending_runs"`
	ChainId       string `bson:"chain_id" json:"chain_id"`
	LastRightId   string `bson:"last_right_id" json:"last_right_id"`
	OpenClaims    string `bson:"open_claims" json:"open_claims"`
	WalletAccount string `bson:"wallet_account" json:"wallet_account"`
}

type ServiceHealth struct {
	Name         string       `bson:"name" json:"name"`
	LastSyncTime time.Time    `bson:"last_sync_time" json:"last_sync_time"`
	NextSyncTime time.Time    `bson:"next_sync_time" json:"next_sync_time"`
	Status       RunnerStatus `bson:"status" json:"status"`
	Healthy      bool         `bson:"healthy" json:"healthy"`
}

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {}

func (e *EmptyService) Stop() {
	e.wg.Done()
}

const EmptyServiceName = "empty"

func (e *EmptyService) Health() ServiceHealth {
	return ServiceHealth{
		Name:         EmptyServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) *EmptyService {
	return &EmptyService{
		wg: wg,
	}
}
