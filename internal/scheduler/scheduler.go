package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

const refreshTimeout = 30 * time.Second

// Refresher recarrega o catálogo a partir do backend.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

type RefresherFunc func(ctx context.Context) (int, error)

func (f RefresherFunc) Refresh(ctx context.Context) (int, error) { return f(ctx) }

type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

func New(loc *time.Location, logger *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc), cron.WithParser(cronParser)),
		logger: logger,
	}
}

// AddCatalogRefresh agenda a recarga do catálogo na expressão informada.
func (s *Scheduler) AddCatalogRefresh(spec string, r Refresher) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		s.runRefresh(ctx, r)
	})
	return err
}

func (s *Scheduler) runRefresh(ctx context.Context, r Refresher) {
	n, err := r.Refresh(ctx)
	if err != nil {
		s.logger.Error("catalog refresh failed", zap.Error(err))
		return
	}
	s.logger.Info("catalog refreshed", zap.Int("services", n))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop espera os jobs em andamento ou o ctx expirar.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
