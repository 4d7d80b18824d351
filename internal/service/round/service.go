package round

import (
	"sync"
	"time"

	"satta_backend/internal/config"
	"satta_backend/internal/repository"
	"satta_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

type serv struct {
	// mu Циклы идут строго по одному: чтение трекера, выборка и обновление трекера
	mu sync.Mutex

	rules       config.WeightRules
	resultRepo  repository.ResultRepository
	trackerRepo repository.TrackerRepository
	journalRepo repository.JournalRepository
	txManager   trm.Manager
	rng         RandomSource
	now         func() time.Time
	logger      *zap.Logger
}

type Deps struct {
	Cfg         config.WeightsConfig
	ResultRepo  repository.ResultRepository
	TrackerRepo repository.TrackerRepository
	JournalRepo repository.JournalRepository // может быть nil
	TxManager   trm.Manager
	Rng         RandomSource
	Now         func() time.Time
	Logger      *zap.Logger
}

// NewRoundService Сервис генерации результатов
func NewRoundService(deps Deps) service.RoundService {
	s := &serv{
		rules:       deps.Cfg.Rules(),
		resultRepo:  deps.ResultRepo,
		trackerRepo: deps.TrackerRepo,
		journalRepo: deps.JournalRepo,
		txManager:   deps.TxManager,
		rng:         deps.Rng,
		now:         deps.Now,
		logger:      deps.Logger,
	}
	if s.rng == nil {
		s.rng = NewSource()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}
