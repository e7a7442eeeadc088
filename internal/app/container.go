// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/doeshing/shellmate-go/internal/application/doctor"
	"github.com/doeshing/shellmate-go/internal/application/query"
	"github.com/doeshing/shellmate-go/internal/domain"
	"github.com/doeshing/shellmate-go/internal/infrastructure/backend"
	"github.com/doeshing/shellmate-go/internal/infrastructure/config"
	"github.com/doeshing/shellmate-go/internal/infrastructure/decode"
	"github.com/doeshing/shellmate-go/internal/infrastructure/shell"
	"github.com/doeshing/shellmate-go/internal/pkg/logger"
	"github.com/doeshing/shellmate-go/internal/ports"
)

// Container holds the dependency graph for one process.
type Container struct {
	Config        domain.Config
	QueryService  *query.Service
	DoctorService *doctor.Service
	Logger        ports.Logger
}

// BuildContainer constructs the dependency graph. Configuration is loaded
// exactly once here and passed by value from then on.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose || cfg.Preferences.Verbose)

	invoker := backend.NewHTTPInvoker(cfg.Backend, decode.NewChain(), log)
	resolver := &backend.RetryResolver{
		Inner: invoker,
		Config: backend.RetryConfig{
			MaxAttempts: cfg.Backend.Retry.Attempts(),
			BackoffBase: cfg.Backend.Retry.BackoffBase(),
		},
		Logger: log,
	}

	prober := shell.NewProber()
	clipboard := shell.NewSystemClipboard()
	executor := shell.NewHostExecutor(cfg.Execution.Shell)
	confirmer := shell.NewConfirmer(cfg, prober.Probe(), executor, clipboard, log)

	queryService := &query.Service{
		Config:   cfg,
		Resolver: resolver,
		Shell:    confirmer,
		Logger:   log,
	}

	doctorService := &doctor.Service{
		Config:     cfg,
		ConfigPath: cfgLoader.Path(),
		Prober:     prober,
		Clipboard:  clipboard,
	}

	return &Container{
		Config:        cfg,
		QueryService:  queryService,
		DoctorService: doctorService,
		Logger:        log,
	}, nil
}
