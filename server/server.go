package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/FrumiousOwl/Teses-front-sub000/apiclient"
	"github.com/FrumiousOwl/Teses-front-sub000/providers"
	"github.com/FrumiousOwl/Teses-front-sub000/providers/configprovider"
	"github.com/FrumiousOwl/Teses-front-sub000/providers/credentialstore"
	"github.com/FrumiousOwl/Teses-front-sub000/providers/loggerprovider"
	anomalyservice "github.com/FrumiousOwl/Teses-front-sub000/services/anomaly"
	hardwareservice "github.com/FrumiousOwl/Teses-front-sub000/services/hardware"
	requestservice "github.com/FrumiousOwl/Teses-front-sub000/services/request"
	userservice "github.com/FrumiousOwl/Teses-front-sub000/services/user"
	"github.com/FrumiousOwl/Teses-front-sub000/session"
)

// Server is the loopback shell the native window points at. It owns one view
// service per navigable list; each keeps its own fetch/filter/page state.
type Server struct {
	Config    providers.ConfigProvider
	Logger    providers.ZapLoggerProvider
	Session   *session.Provider
	API       *apiclient.Client
	Hardware  hardwareservice.HardwareService
	Defective hardwareservice.HardwareService
	LowStock  hardwareservice.HardwareService
	Requests  requestservice.RequestService
	Users     userservice.UserService
	Anomalies anomalyservice.AnomalyService

	exportDir  string
	httpServer *http.Server
}

func ServerInit() *Server {
	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}

	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()

	store := credentialstore.NewFileCredentialStore(cfg.GetCredentialFile())
	api := apiclient.NewClient(cfg.GetAPIBaseURL(), &http.Client{}, store, logger)

	return NewServer(cfg, logger, store, api)
}

func NewServer(cfg providers.ConfigProvider, logger providers.ZapLoggerProvider, store providers.CredentialStore, api *apiclient.Client) *Server {
	return &Server{
		Config:    cfg,
		Logger:    logger,
		Session:   session.NewProvider(store, logger),
		API:       api,
		Hardware:  hardwareservice.NewHardwareService(api, logger),
		Defective: hardwareservice.NewDefectiveService(api, logger),
		LowStock:  hardwareservice.NewLowStockService(api, logger),
		Requests:  requestservice.NewRequestService(api, logger),
		Users:     userservice.NewUserService(api, logger),
		Anomalies: anomalyservice.NewAnomalyService(api, logger),
		exportDir: os.TempDir(),
	}
}

func (s *Server) Start() {
	addr := "127.0.0.1:" + s.Config.GetShellPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	fmt.Println("shell running on", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("shell error: %v", err)
	}
}

func (s *Server) Stop() {
	fmt.Println("shutting down shell...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("error shutting down shell: %v", err)
	}

	s.Logger.SyncLogger()
	fmt.Println("shell shutdown complete.")
}
