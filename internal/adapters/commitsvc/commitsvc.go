// Package commitsvc provides the real implementation of ports.CommitService.
package commitsvc

import (
	"errors"

	"github.com/mcdonaldj/gitorade/internal/adapters/execgit"
	"github.com/mcdonaldj/gitorade/internal/commit"
	"github.com/mcdonaldj/gitorade/internal/config"
	"github.com/mcdonaldj/gitorade/internal/locate"
	"github.com/mcdonaldj/gitorade/internal/ports"
)

// ErrEmptyMessage reports a commit attempted with no message.
var ErrEmptyMessage = errors.New("commit message required")

// Service implements ports.CommitService using the exec adapters. The
// discovered git binary is cached for the lifetime of the service so
// repeat commits spawn no extra version queries.
type Service struct {
	cache  *locate.Cache
	runner ports.CommandRunner
}

// New creates a service backed by the production adapters.
func New() *Service {
	runner := execgit.NewRunner()
	return &Service{
		cache:  locate.NewCache(execgit.NewResolver(), runner),
		runner: runner,
	}
}

// NewWith creates a service with injected capabilities, for tests.
func NewWith(resolver ports.PathResolver, runner ports.CommandRunner) *Service {
	return &Service{
		cache:  locate.NewCache(resolver, runner),
		runner: runner,
	}
}

// LoadConfig loads the application configuration.
func (s *Service) LoadConfig() (*config.Config, error) {
	return config.Load()
}

// GitVersion reports the discovered git binary path and version.
func (s *Service) GitVersion() (string, string, error) {
	bin, err := s.cache.Git()
	if err != nil {
		return "", "", err
	}
	return bin.Path, bin.Version, nil
}

// Commit formats message with commitType and commits the staged changes
// in dir, forwarding any configured overrides.
func (s *Service) Commit(message, commitType, dir string) (ports.CommitOutcome, error) {
	final := commit.Format(message, commitType)
	if final == "" {
		return ports.CommitOutcome{}, ErrEmptyMessage
	}

	bin, err := s.cache.Git()
	if err != nil {
		return ports.CommitOutcome{}, err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return ports.CommitOutcome{}, err
	}
	overrides := make([]commit.Override, 0, len(cfg.Overrides))
	for _, o := range cfg.Overrides {
		overrides = append(overrides, commit.Override{Key: o.Key, Value: o.Value})
	}

	res, err := commit.Run(s.runner, bin, commit.Request{
		Message:   final,
		Dir:       dir,
		Overrides: overrides,
	})
	if err != nil {
		return ports.CommitOutcome{}, err
	}

	return ports.CommitOutcome{
		Message:  final,
		ExitCode: res.ExitCode,
		Output:   res.Output,
	}, nil
}

// Compile-time check that Service implements ports.CommitService.
var _ ports.CommitService = (*Service)(nil)
