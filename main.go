package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/catalog"
	"github.com/dright-io/dright-core/verify"
	"github.com/dright-io/dright-core/wallet"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	absConfigPath := ""
	absEnvPath := ""
	if len(os.Args) > 1 {
		absConfigPath, _ = filepath.Abs(os.Args[1])
	}
	if len(os.Args) > 2 {
		absEnvPath, _ = filepath.Abs(os.Args[2])
	}

	app.InitConfig(absConfigPath, absEnvPath)
	app.InitLogger()
	app.InitDB()
	app.InitSessionStore()
	catalog.InitCatalog()
	verify.InitMetadata()
	wallet.InitNode()

	manager := wallet.NewManager(wallet.NewRegistry())

	walletAccount := ""
	if connection := manager.Restore(); connection.IsValid() {
		walletAccount = connection.AccountId
	}

	healthRunner := app.NewHealthCheck(uuid.NewString(), walletAccount)

	var wg sync.WaitGroup
	services := createServices(&wg, manager, healthRunner)
	healthRunner.SetServices(services)

	wg.Add(len(services))
	for _, service := range services {
		go service.Start()
	}

	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Gracefully shutting down server")
	for _, service := range services {
		service.Stop()
	}
	wg.Wait()

	if err := app.SessionStore.Close(); err != nil {
		log.Error("[MAIN] Error closing session store: ", err)
	}
	if err := app.DB.Disconnect(); err != nil {
		log.Error("[MAIN] Error disconnecting from db: ", err)
	}
	log.Debug("[MAIN] Server gracefully stopped")
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Got signal: ", sig)
	done <- true
}
