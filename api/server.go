package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/catalog"
	"github.com/dright-io/dright-core/minting"
	"github.com/dright-io/dright-core/models"
	"github.com/dright-io/dright-core/verify"
	"github.com/dright-io/dright-core/wallet"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	ServerName = "api"

	shutdownTimeout = 10 * time.Second
)

// Server exposes the pipeline operations over HTTP. It runs as a service
// alongside the runners and shares their lifecycle.
type Server struct {
	catalog      catalog.Client
	engine       *verify.Engine
	wallet       *wallet.Manager
	orchestrator *minting.Orchestrator

	httpServer *http.Server
	wg         *sync.WaitGroup
}

func NewServer(engine *verify.Engine, manager *wallet.Manager, orchestrator *minting.Orchestrator, wg *sync.WaitGroup) *Server {
	if engine == nil || manager == nil || orchestrator == nil || wg == nil {
		log.Error("[API] Invalid parameters for server")
		return nil
	}

	server := &Server{
		catalog:      catalog.Catalog,
		engine:       engine,
		wallet:       manager,
		orchestrator: orchestrator,
		wg:           wg,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", server.health)

	v1 := router.Group("/v1")
	{
		v1.POST("/rights", server.createRight)
		v1.GET("/rights", server.listRights)
		v1.GET("/rights/:id", server.getRight)
		v1.PATCH("/rights/:id", server.updateRight)
		v1.POST("/rights/:id/listing", server.validateListing)
		v1.POST("/rights/:id/verification", server.startVerification)
		v1.POST("/rights/:id/mint", server.startMinting)
		v1.GET("/rights/:id/mint/progress", server.getProgress)
		v1.POST("/mint/batch", server.startBatch)

		v1.GET("/listing/spec", server.resolveListingSpec)

		v1.GET("/claims/:id", server.getClaim)
		v1.POST("/claims/:id/placement", server.confirmPlacement)
		v1.POST("/claims/:id/check-code", server.checkCode)
		v1.POST("/claims/:id/oauth-result", server.acceptOAuthResult)
		v1.POST("/claims/:id/evidence", server.submitEvidence)
		v1.POST("/claims/:id/review", server.acceptReviewerDecision)

		v1.GET("/wallet/providers", server.detectProviders)
		v1.GET("/wallet/session", server.getWalletSession)
		v1.POST("/wallet/connect", server.connectWallet)
		v1.POST("/wallet/disconnect", server.disconnectWallet)
	}

	server.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.Config.API.Port),
		Handler: router,
	}

	return server
}

func (s *Server) Start() {
	if s == nil {
		return
	}
	log.Info("[API] Starting server on ", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("[API] Server error: ", err)
	}
	log.Info("[API] Stopped server")
	s.wg.Done()
}

func (s *Server) Health() models.ServiceHealth {
	now := time.Now()
	return models.ServiceHealth{
		Name:         ServerName,
		LastSyncTime: now,
		NextSyncTime: now,
		Healthy:      true,
	}
}

func (s *Server) Stop() {
	if s == nil {
		return
	}
	log.Debug("[API] Stopping server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error("[API] Error shutting down server: ", err)
	}
}
