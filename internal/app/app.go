package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
	logger          *zap.Logger
}

func NewApp(logger *zap.Logger) *App {
	return &App{logger: logger}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.logger)
}

// RunHTTP Поднимает HTTP сервер. withLoop - рядом запускается цикл по расписанию
func (s *App) RunHTTP(ctx context.Context, withLoop bool) error {
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	sp := s.ServiceProvider
	srv := &http.Server{
		Addr:              sp.HTTPCfg().Address(),
		Handler:           sp.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if withLoop {
		g.Go(func() error {
			return runLoop(gctx, sp.RoundService(ctx), sp.RoundCfg().CycleInterval(), s.logger.Named("loop"))
		})
	}

	return g.Wait()
}

// RunLoop Только цикл по расписанию, без HTTP
func (s *App) RunLoop(ctx context.Context) error {
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	sp := s.ServiceProvider
	return runLoop(ctx, sp.RoundService(ctx), sp.RoundCfg().CycleInterval(), s.logger.Named("loop"))
}
