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

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/rpc/jsonrpc"
	"os"
	"os/signal"
	"syscall"

	_ "Olympus/internal/providers" // Import for side effects (auto-registration)
	"Olympus/internal/rpc"
	"Olympus/pkg/config"
	"Olympus/pkg/engine"
	"Olympus/pkg/provider/registry"
)

var (
	Version = "dev"
)

// stdInOutReadWriteCloser wraps stdin/stdout for JSON-RPC
type stdInOutReadWriteCloser struct {
	reader io.Reader
	writer io.Writer
	closer io.Closer
}

func (s *stdInOutReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.reader.Read(p)
}

func (s *stdInOutReadWriteCloser) Write(p []byte) (n int, err error) {
	n, err = s.writer.Write(p)
	if err == nil {
		if flusher, ok := s.writer.(interface{ Flush() error }); ok {
			if err := flusher.Flush(); err != nil {
				return 0, err
			}
		}
	}
	return n, err
}

func (s *stdInOutReadWriteCloser) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func main() {
	configPath := flag.String("config", config.DefaultPath(), "Path to the YAML config file")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}

	appEngine := engine.New(cfg)
	defer func() { _ = appEngine.Shutdown() }()

	if err := registry.LoadAll(appEngine); err != nil {
		appEngine.Logger.Error("Failed to load providers: %v", err)
		// Continue anyway - we can still serve RPC without providers
	}

	if err := appEngine.InitializeProviders(context.Background()); err != nil {
		appEngine.Logger.Error("Failed to initialize providers: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		appEngine.Logger.Info("RPC server shutting down...")
		_ = appEngine.Shutdown()
		os.Exit(0)
	}()

	rpcServer, err := rpc.NewServer(appEngine, Version)
	if err != nil {
		appEngine.Logger.Error("Failed to register RPC services: %v", err)
		os.Exit(1)
	}

	rwc := &stdInOutReadWriteCloser{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}

	appEngine.Logger.Info("Olympus RPC server v%s started", Version)
	appEngine.Logger.Info("Loaded %d providers", appEngine.ProviderCount())

	// stderr does not interfere with the JSON-RPC stream
	_, _ = fmt.Fprintf(os.Stderr, "Olympus RPC v%s ready with %d providers\n", Version, appEngine.ProviderCount())

	rpcServer.ServeCodec(jsonrpc.NewServerCodec(rwc))

	appEngine.Logger.Info("RPC connection closed")
}
