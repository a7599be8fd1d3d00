package di

import (
	"context"

	"go.uber.org/zap"

	"github.com/chanmix51/kaku/application/ports"
	"github.com/chanmix51/kaku/application/services"
	"github.com/chanmix51/kaku/infrastructure/config"
	"github.com/chanmix51/kaku/infrastructure/messaging"
	"github.com/chanmix51/kaku/infrastructure/persistence/memory"
	"github.com/chanmix51/kaku/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewCollector(cfg.MetricsNamespace)
}

// ProvideProjectRepository creates the in-memory project repository
func ProvideProjectRepository() ports.ProjectRepository {
	return memory.NewProjectRepository()
}

// ProvideNoteRepository creates the in-memory note repository
func ProvideNoteRepository() ports.NoteRepository {
	return memory.NewNoteRepository()
}

// ProvideThoughtRepository creates the in-memory thought repository
func ProvideThoughtRepository() ports.ThoughtRepository {
	return memory.NewThoughtRepository()
}

// ProvideStyloRepository creates the in-memory stylo repository
func ProvideStyloRepository() ports.StyloRepository {
	return memory.NewStyloRepository()
}

// ProvideEventQueue creates the unbounded event queue
func ProvideEventQueue(metrics *observability.Collector) *messaging.EventQueue {
	return messaging.NewEventQueue(metrics)
}

// ProvideEventPublisher exposes the queue through its publishing port
func ProvideEventPublisher(queue *messaging.EventQueue) ports.EventPublisher {
	return queue
}

// ProvideEventDispatcher creates the dispatcher consuming the queue
func ProvideEventDispatcher(queue *messaging.EventQueue, logger *zap.Logger) *messaging.EventDispatcher {
	return messaging.NewEventDispatcher(queue, logger)
}

// ProvideScribeService creates the domain service
func ProvideScribeService(
	projects ports.ProjectRepository,
	notes ports.NoteRepository,
	thoughts ports.ThoughtRepository,
	stylos ports.StyloRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
	metrics *observability.Collector,
) *services.ScribeService {
	return services.NewScribeService(projects, notes, thoughts, stylos, publisher, logger, metrics)
}

// Shutdown flushes and stops the container-owned resources. The queue is
// closed first so the dispatcher drains the backlog before exiting.
func (c *Container) Shutdown(ctx context.Context) {
	c.Queue.Close()
	_ = c.Logger.Sync()
}
