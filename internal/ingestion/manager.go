package ingestion

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/mr1hm/go-disaster-dashboard/internal/config"
	"github.com/mr1hm/go-disaster-dashboard/internal/models"
	"github.com/mr1hm/go-disaster-dashboard/internal/observability"
	"github.com/mr1hm/go-disaster-dashboard/internal/repository"
	"github.com/mr1hm/go-disaster-dashboard/internal/stream"
	"github.com/mr1hm/go-disaster-dashboard/internal/worker"
)

const (
	sourceUSGS  = "usgs"
	sourceGDACS = "gdacs"
	sourceSeed  = "seed"
)

type job struct {
	source string
	alert  models.Alert
}

// Manager polls the alert feeds and stores what is new.
type Manager struct {
	cfg         *config.Config
	repo        repository.AlertRepository
	broadcaster *stream.Broadcaster
	metrics     *observability.Metrics
	httpClient  *http.Client
	pool        *worker.Pool[job]
	wg          sync.WaitGroup
}

// NewManager wires the feed pollers. broadcaster and metrics may be nil.
func NewManager(cfg *config.Config, repo repository.AlertRepository, broadcaster *stream.Broadcaster, metrics *observability.Metrics) *Manager {
	return &Manager{
		cfg:         cfg,
		repo:        repo,
		broadcaster: broadcaster,
		metrics:     metrics,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Seed stores alerts that are not present yet, without broadcasting them.
func (m *Manager) Seed(ctx context.Context, alerts []models.Alert) error {
	for _, a := range alerts {
		exists, err := m.repo.Exists(ctx, a.ID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := m.repo.Add(ctx, &a); err != nil {
			return err
		}
		m.countIngested(sourceSeed)
	}
	return nil
}

func (m *Manager) Start(ctx context.Context) {
	processor := func(ctx context.Context, j job) error {
		exists, err := m.repo.Exists(ctx, j.alert.ID)
		if err != nil {
			slog.Error("error checking existence", "id", j.alert.ID, "error", err)
			return err
		}
		if exists {
			return nil
		}

		if err := m.repo.Add(ctx, &j.alert); err != nil {
			slog.Error("error adding alert", "id", j.alert.ID, "error", err)
			return err
		}
		m.countIngested(j.source)

		if m.broadcaster != nil {
			m.broadcaster.Broadcast(j.alert)
		}

		slog.Info("added alert", "id", j.alert.ID, "level", j.alert.Level, "source", j.source)
		return nil
	}

	m.pool = worker.NewPool("ingestion", m.cfg.Worker.Count, m.cfg.Worker.BufferSize, processor)
	m.pool.Start(ctx)

	if m.cfg.Sources.USGSEnabled {
		m.wg.Add(1)
		go m.runPoller(ctx, sourceUSGS, m.cfg.Sources.USGSURL, m.cfg.Sources.USGSPollInterval)
	}

	if m.cfg.Sources.GDACSEnabled {
		m.wg.Add(1)
		go m.runPoller(ctx, sourceGDACS, m.cfg.Sources.GDACSURL, m.cfg.Sources.GDACSPollInterval)
	}
}

func (m *Manager) runPoller(ctx context.Context, source, url string, interval time.Duration) {
	defer m.wg.Done()
	slog.Info("starting poller", "source", source, "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.poll(ctx, source, url)

	for {
		select {
		case <-ctx.Done():
			slog.Info("poller shutting down", "source", source)
			return
		case <-ticker.C:
			m.poll(ctx, source, url)
		}
	}
}

func (m *Manager) poll(ctx context.Context, source, url string) {
	slog.Debug("polling", "source", source)

	var (
		alerts []models.Alert
		err    error
	)

	switch source {
	case sourceUSGS:
		alerts, err = m.pollUSGS(ctx, url)
	case sourceGDACS:
		alerts, err = m.pollGDACS(ctx, url)
	}
	if err != nil {
		slog.Error("poll failed", "source", source, "error", err)
		if m.metrics != nil {
			m.metrics.PollErrors.WithLabelValues(source).Inc()
		}
		return
	}

	for _, a := range alerts {
		if !m.pool.Submit(ctx, job{source: source, alert: a}) {
			return
		}
	}

	slog.Debug("poll complete", "source", source, "count", len(alerts))
}

func (m *Manager) countIngested(source string) {
	if m.metrics != nil {
		m.metrics.AlertsIngested.WithLabelValues(source).Inc()
	}
}

// Stop waits for the pollers, then drains the worker pool. Cancel the
// context passed to Start first.
func (m *Manager) Stop() {
	m.wg.Wait()
	m.pool.Stop()
	m.httpClient.CloseIdleConnections()
	slog.Info("ingestion manager stopped")
}
