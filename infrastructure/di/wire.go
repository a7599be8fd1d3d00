//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/chanmix51/kaku/application/ports"
	"github.com/chanmix51/kaku/application/services"
	"github.com/chanmix51/kaku/infrastructure/config"
	"github.com/chanmix51/kaku/infrastructure/messaging"
	"github.com/chanmix51/kaku/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *observability.Collector
	ProjectRepo ports.ProjectRepository
	NoteRepo    ports.NoteRepository
	ThoughtRepo ports.ThoughtRepository
	StyloRepo   ports.StyloRepository
	Queue       *messaging.EventQueue
	Dispatcher  *messaging.EventDispatcher
	Scribe      *services.ScribeService
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideProjectRepository,
	ProvideNoteRepository,
	ProvideThoughtRepository,
	ProvideStyloRepository,
	ProvideEventQueue,
	ProvideEventPublisher,
	ProvideEventDispatcher,
	ProvideScribeService,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
