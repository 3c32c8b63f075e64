package app

import (
	"sync"
	"time"

	"github.com/dright-io/dright-core/models"
	log "github.com/sirupsen/logrus"
)

// RunnerService drives a Runner on a fixed interval until stopped.
type RunnerService struct {
	name     string
	runner   models.Runner
	interval time.Duration
	stop     chan bool
	wg       *sync.WaitGroup

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func NewRunnerService(name string, runner models.Runner, wg *sync.WaitGroup, interval time.Duration) *RunnerService {
	if name == "" || runner == nil || wg == nil || interval <= 0 {
		log.Error("[RUNNER] Invalid parameters for runner service")
		return nil
	}
	return &RunnerService{
		name:     name,
		runner:   runner,
		interval: interval,
		stop:     make(chan bool, 1),
		wg:       wg,
	}
}

func (x *RunnerService) Start() {
	if x == nil {
		return
	}
	log.Infof("[%s] Starting service", x.name)
	stop := false
	for !stop {
		log.Debugf("[%s] Starting run", x.name)

		x.runner.Run()

		x.updateHealth()

		log.Debugf("[%s] Finished run, sleeping for %s", x.name, x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Infof("[%s] Stopped service", x.name)
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *RunnerService) updateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	lastSyncTime := time.Now()

	x.health = models.ServiceHealth{
		Name:         x.name,
		LastSyncTime: lastSyncTime,
		NextSyncTime: lastSyncTime.Add(x.interval),
		Status:       x.runner.Status(),
		Healthy:      true,
	}
}

func (x *RunnerService) Stop() {
	if x == nil {
		return
	}
	log.Debugf("[%s] Stopping service", x.name)
	select {
	case x.stop <- true:
	default:
	}
}
