// Olympus: An OlympusScan content source for manga reader hosts.
// Copyright (C) 2025 Luca M. Schmidt (LuMiSxh)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"Olympus/pkg/config"
	"Olympus/pkg/engine/logger"
	"Olympus/pkg/engine/network"
	"Olympus/pkg/errors"
	"Olympus/pkg/provider"

	"github.com/philippgille/gokv"
	"github.com/philippgille/gokv/syncmap"
)

// StoreOpener returns a key-value store for the named bucket
type StoreOpener func(bucket string) (gokv.Store, error)

// Engine is the central component providing services to providers
type Engine struct {
	Config    *config.Config
	Network   *network.Client
	Logger    logger.Logger
	OpenStore StoreOpener

	providers     map[string]provider.Provider
	providerMutex sync.RWMutex

	debugMode   bool
	verboseMode bool
}

// MemoryStore opens a process-local store; contents are lost on exit
func MemoryStore(string) (gokv.Store, error) {
	return syncmap.NewStore(syncmap.DefaultOptions), nil
}

// New creates an Engine for cfg, logging to cfg.LogFile
func New(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	log := logger.NewService(cfg.LogFile)
	e := NewWithLogger(cfg, log)
	log.Info("Engine initialized successfully")
	return e
}

// NewWithLogger creates an Engine using an existing logger
func NewWithLogger(cfg *config.Config, log logger.Logger) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	e := &Engine{
		Config: cfg,
		Network: network.NewClient(network.Options{
			RequestsPerSecond: cfg.RequestsPerSecond,
			Timeout:           cfg.RequestTimeout,
			Retries:           cfg.Retries,
			UserAgent:         cfg.UserAgent,
			Referer:           cfg.BaseURL + "/",
			CloudflareBypass:  cfg.CloudflareBypass,
		}, log),
		Logger:    log,
		OpenStore: MemoryStore,
		providers: make(map[string]provider.Provider),
	}

	if cfg.Debug {
		e.SetDebugMode(true)
	}
	return e
}

// RegisterProvider adds a provider to the registry
func (e *Engine) RegisterProvider(p provider.Provider) error {
	if p == nil {
		return errors.Track(fmt.Errorf("provider is nil")).Error()
	}

	id := p.ID()
	if id == "" {
		return errors.Track(fmt.Errorf("provider has empty ID")).Error()
	}

	if err := p.Info().Validate(); err != nil {
		return errors.TP(err, id)
	}

	e.providerMutex.Lock()
	defer e.providerMutex.Unlock()

	if _, exists := e.providers[id]; exists {
		return errors.Track(fmt.Errorf("provider with ID '%s' already registered", id)).Error()
	}

	e.providers[id] = p
	e.Logger.Info("Registered provider: %s (%s)", p.Name(), id)
	return nil
}

// GetProvider retrieves a registered provider by ID
func (e *Engine) GetProvider(id string) (provider.Provider, error) {
	e.providerMutex.RLock()
	defer e.providerMutex.RUnlock()

	p, exists := e.providers[id]
	if !exists {
		return nil, errors.Track(fmt.Errorf("%w: provider '%s'", errors.ErrNotFound, id)).
			WithContext("available_providers", e.getProviderIDs()).
			Error()
	}

	return p, nil
}

// AllProviders returns all registered providers sorted by ID
func (e *Engine) AllProviders() []provider.Provider {
	e.providerMutex.RLock()
	defer e.providerMutex.RUnlock()

	providers := make([]provider.Provider, 0, len(e.providers))
	for _, p := range e.providers {
		providers = append(providers, p)
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i].ID() < providers[j].ID() })
	return providers
}

// ProviderCount returns the number of registered providers
func (e *Engine) ProviderCount() int {
	e.providerMutex.RLock()
	defer e.providerMutex.RUnlock()
	return len(e.providers)
}

// InitializeProviders initializes all registered providers
func (e *Engine) InitializeProviders(ctx context.Context) error {
	for _, p := range e.AllProviders() {
		if err := p.Initialize(ctx); err != nil {
			e.Logger.Error("Failed to initialize provider %s: %v", p.ID(), err)
			// Continue with other providers
		}
	}
	return nil
}

// Shutdown closes the logger
func (e *Engine) Shutdown() error {
	e.Logger.Info("Shutting down engine...")

	if closer, ok := e.Logger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// LogFile returns the path of the log file, or "" when logging is disabled
func (e *Engine) LogFile() string {
	if s, ok := e.Logger.(*logger.Service); ok {
		return s.LogFile()
	}
	return ""
}

func (e *Engine) getProviderIDs() []string {
	ids := make([]string, 0, len(e.providers))
	for id := range e.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetDebugMode enables or disables debug logging and detailed errors
func (e *Engine) SetDebugMode(enabled bool) {
	e.debugMode = enabled
	if enabled {
		e.Logger.SetLevel(logger.LevelDebug)
		e.Logger.Debug("Debug mode enabled")
	} else if !e.verboseMode {
		e.Logger.SetLevel(logger.LevelInfo)
	}
}

// SetVerboseMode enables or disables function call chains in errors
func (e *Engine) SetVerboseMode(enabled bool) {
	e.verboseMode = enabled
	if enabled {
		e.Logger.SetLevel(logger.LevelDebug)
		e.Logger.Info("Verbose mode enabled")
	} else if !e.debugMode {
		e.Logger.SetLevel(logger.LevelInfo)
	}
}

// FormatError formats an error based on the current verbosity settings
func (e *Engine) FormatError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case e.verboseMode:
		return errors.FormatCLIDebug(err)
	case e.debugMode:
		return errors.FormatCLI(err)
	default:
		return errors.FormatCLISimple(err)
	}
}
