// Package server initializes and runs the evidence custody server: it
// opens the database, runs migrations, wires the object store and the
// services, and starts the gRPC endpoint with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/logging"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/config"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/repomanager"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/services"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/storage"

	gs "github.com/steveuniverseuwu/EvidenceShield8/internal/server/grpc"
)

type App struct {
	config              *config.Config
	logger              logging.Logger
	db                  *sql.DB
	userService         *services.UserService
	evidenceService     *services.EvidenceService
	verificationService *services.VerificationService
	auditService        *services.AuditService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m, err := repomanager.NewPostgresRepositoryManager()
	if err != nil {
		return nil, fmt.Errorf("repository init error: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	blobs, err := storage.NewS3BlobStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("object storage init error: %w", err)
	}

	as := services.NewAuditService(db, m, logger)
	us := services.NewUserService(db, m, cfg)
	es := services.NewEvidenceService(db, m, blobs, services.RecordKeyring{}, as, logger)
	vs := services.NewVerificationService(db, m, blobs, services.RecordKeyring{}, as)

	return &App{
		config:              cfg,
		logger:              logger,
		db:                  db,
		userService:         us,
		evidenceService:     es,
		verificationService: vs,
		auditService:        as,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService,
		app.evidenceService, app.verificationService, app.auditService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "failed to close db", "error", err)
	}
}
