package app

import (
	"context"

	roundAPI "satta_backend/internal/api/round"
	"satta_backend/internal/config"
	"satta_backend/internal/config/env"
	"satta_backend/internal/middleware"
	"satta_backend/internal/repository"
	"satta_backend/internal/repository/journal_repo"
	"satta_backend/internal/repository/result_repo"
	"satta_backend/internal/repository/tracker_repo"
	"satta_backend/internal/service"
	"satta_backend/internal/service/round"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const weightsConfigPath = "config.yaml"

type ServiceProvider struct {
	logger *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Round bits
	roundCfg    config.RoundConfig
	weightsCfg  config.WeightsConfig
	resultRepo  repository.ResultRepository
	trackerRepo repository.TrackerRepository
	roundServ   service.RoundService
	roundHand   *roundAPI.Handler

	// Journal
	journalCfg  config.JournalConfig
	journalRepo repository.JournalRepository

	// Admin, nil если секрет не задан
	adminCfg     config.AdminConfig
	adminChecked bool

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(logger *zap.Logger) *ServiceProvider {
	return &ServiceProvider{logger: logger}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) RoundCfg() config.RoundConfig {
	if sp.roundCfg == nil {
		cfg, err := env.NewRoundConfig()
		if err != nil {
			panic("failed to get round config: " + err.Error())
		}
		sp.roundCfg = cfg
	}
	return sp.roundCfg
}

func (sp *ServiceProvider) WeightsCfg() config.WeightsConfig {
	if sp.weightsCfg == nil {
		cfg, err := env.NewWeightsConfigFromYAML(weightsConfigPath)
		if err != nil {
			panic("failed to get weights config: " + err.Error())
		}
		sp.weightsCfg = cfg
	}
	return sp.weightsCfg
}

func (sp *ServiceProvider) JournalCfg() config.JournalConfig {
	if sp.journalCfg == nil {
		cfg, err := env.NewJournalConfig()
		if err != nil {
			panic("failed to get journal config: " + err.Error())
		}
		sp.journalCfg = cfg
	}
	return sp.journalCfg
}

// AdminCfg Возвращает nil, если ADMIN_TOKEN_SECRET не задан: админские ручки тогда не поднимаются
func (sp *ServiceProvider) AdminCfg() config.AdminConfig {
	if !sp.adminChecked {
		sp.adminChecked = true
		cfg, err := env.NewAdminConfig()
		if err != nil {
			sp.logger.Warn("admin routes disabled", zap.Error(err))
			return nil
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) ResultRepository(ctx context.Context) repository.ResultRepository {
	if sp.resultRepo == nil {
		sp.resultRepo = result_repo.NewResultRepository(sp.DBClient(ctx))
	}
	return sp.resultRepo
}

func (sp *ServiceProvider) TrackerRepository() repository.TrackerRepository {
	if sp.trackerRepo == nil {
		sp.trackerRepo = tracker_repo.NewTrackerRepository()
	}
	return sp.trackerRepo
}

func (sp *ServiceProvider) JournalRepository() repository.JournalRepository {
	if sp.journalRepo == nil {
		r, err := journal_repo.NewJournalRepository(sp.JournalCfg().Path())
		if err != nil {
			panic("failed to open journal: " + err.Error())
		}
		sp.journalRepo = r
	}
	return sp.journalRepo
}

func (sp *ServiceProvider) RoundService(ctx context.Context) service.RoundService {
	if sp.roundServ == nil {
		rng := round.NewSource()
		if seed, ok := sp.RoundCfg().Seed(); ok {
			sp.logger.Info("using fixed rng seed", zap.Uint64("seed", seed))
			rng = round.NewSeededSource(seed)
		}

		sp.roundServ = round.NewRoundService(round.Deps{
			Cfg:         sp.WeightsCfg(),
			ResultRepo:  sp.ResultRepository(ctx),
			TrackerRepo: sp.TrackerRepository(),
			JournalRepo: sp.JournalRepository(),
			TxManager:   sp.TXManager(ctx),
			Rng:         rng,
			Logger:      sp.logger.Named("round"),
		})
	}
	return sp.roundServ
}

func (sp *ServiceProvider) RoundHandler(ctx context.Context) *roundAPI.Handler {
	if sp.roundHand == nil {
		sp.roundHand = roundAPI.NewHandler(roundAPI.HandlerDeps{
			Serv:   sp.RoundService(ctx),
			Logger: sp.logger.Named("http"),
		})
	}
	return sp.roundHand
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		roundHandler := sp.RoundHandler(ctx)
		r.Get("/", roundHandler.Generate)
		r.Get("/analysis", roundHandler.Analysis)
		r.Get("/tracker", roundHandler.Tracker)
		r.Get("/journal", roundHandler.Journal)

		if adminCfg := sp.AdminCfg(); adminCfg != nil {
			r.Route("/admin", func(rr chi.Router) {
				rr.Use(middleware.AdminOnly(adminCfg.TokenSecretKey()))
				rr.Post("/tracker/rebuild", roundHandler.RebuildTracker)
			})
		}

		sp.router = r
	}
	return sp.router
}

// Close Освобождает пул и журнал, если они были открыты
func (sp *ServiceProvider) Close() {
	if sp.journalRepo != nil {
		if err := sp.journalRepo.Close(); err != nil {
			sp.logger.Warn("failed to close journal", zap.Error(err))
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
