package main

import (
	"sync"
	"time"

	"github.com/dright-io/dright-core/api"
	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/minting"
	"github.com/dright-io/dright-core/models"
	"github.com/dright-io/dright-core/verify"
	"github.com/dright-io/dright-core/wallet"
	log "github.com/sirupsen/logrus"
)

const (
	HealthServiceName = "health"

	defaultServiceInterval = 30 * time.Second
	defaultHealthInterval  = 60 * time.Second
)

func serviceInterval(millis int64, fallback time.Duration) time.Duration {
	if millis <= 0 {
		return fallback
	}
	return time.Duration(millis) * time.Millisecond
}

// createServices wires the long-running services. A disabled service is
// replaced by an empty placeholder so the shutdown accounting stays
// uniform.
func createServices(
	wg *sync.WaitGroup,
	manager *wallet.Manager,
	healthRunner *app.HealthCheckRunner,
) []models.Service {
	engine := verify.NewEngine()
	orchestrator := minting.NewOrchestrator(manager)

	services := []models.Service{}

	if app.Config.MintRunner.Enabled {
		services = append(services, app.NewRunnerService(
			minting.MintRunnerName,
			minting.NewMintRunner(manager),
			wg,
			serviceInterval(app.Config.MintRunner.IntervalMillis, defaultServiceInterval),
		))
	} else {
		log.Info("[MAIN] Mint runner disabled")
		services = append(services, models.NewEmptyService(wg))
	}

	if app.Config.API.Enabled {
		services = append(services, api.NewServer(engine, manager, orchestrator, wg))
	} else {
		log.Info("[MAIN] API disabled")
		services = append(services, models.NewEmptyService(wg))
	}

	services = append(services, app.NewRunnerService(
		HealthServiceName,
		healthRunner,
		wg,
		serviceInterval(app.Config.HealthCheck.IntervalMillis, defaultHealthInterval),
	))

	return services
}
