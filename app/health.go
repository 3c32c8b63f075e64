package app

import (
	"os"
	"sync"
	"time"

	"github.com/dright-io/dright-core/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// HealthCheckRunner periodically upserts a health document for this
// instance, including the health of every registered service.
type HealthCheckRunner struct {
	instanceId    string
	hostname      string
	walletAccount string

	servicesMu sync.RWMutex
	services   []models.Service
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		WalletAccount: x.walletAccount,
	}
}

func (x *HealthCheckRunner) SetServices(services []models.Service) {
	x.servicesMu.Lock()
	defer x.servicesMu.Unlock()
	x.services = services
}

func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	x.servicesMu.RLock()
	defer x.servicesMu.RUnlock()

	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == models.EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	filter := bson.M{
		"instance_id": x.instanceId,
		"hostname":    x.hostname,
	}

	onInsert := bson.M{
		"instance_id":    x.instanceId,
		"hostname":       x.hostname,
		"wallet_account": x.walletAccount,
		"created_at":     time.Now(),
	}

	update := bson.M{
		"$set": bson.M{
			"service_healths": x.ServiceHealths(),
			"updated_at":      time.Now(),
		},
		"$setOnInsert": onInsert,
	}

	err := DB.UpsertOne(models.CollectionHealthChecks, filter, update)
	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

func NewHealthCheck(instanceId string, walletAccount string) *HealthCheckRunner {
	hostname, err := os.Hostname()
	if err != nil {
		log.Error("[HEALTH] Error getting hostname: ", err)
		hostname = "unknown"
	}

	return &HealthCheckRunner{
		instanceId:    instanceId,
		hostname:      hostname,
		walletAccount: walletAccount,
	}
}
