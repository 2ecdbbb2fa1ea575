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

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Olympus/pkg/cli"
	"Olympus/pkg/config"
	"Olympus/pkg/engine"
	"Olympus/pkg/provider"
	"Olympus/pkg/provider/registry"
	"Olympus/pkg/util"

	"github.com/spf13/cobra"
)

var (
	appEngine     *engine.Engine
	formatter     = cli.DefaultFormatter
	version       string
	debugMode     bool
	verboseErrors bool
	apiMode       bool
	tableOutput   bool
	providerID    string
	configPath    string
	cloudflare    bool
	opTimeout     time.Duration
	exitCode      int
)

var rootCmd = &cobra.Command{
	Use:   "olympus",
	Short: "Olympus browses OlympusScan from the command line.",
	Long: "Olympus is a content source for OlympusScan. It fetches series details, chapter lists, " +
		"page images, search results and the home page sections the way a manga reader host would.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if appEngine != nil {
			return nil
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("cloudflare") {
			cfg.CloudflareBypass = cloudflare
		}
		if debugMode {
			cfg.Debug = true
		}

		appEngine = engine.New(cfg)
		SetupDebugMode()

		if tableOutput {
			formatter.OutputType = cli.OutputTypeTable
		}

		if err := registry.LoadAll(appEngine); err != nil {
			return err
		}
		return appEngine.InitializeProviders(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appEngine != nil {
			_ = appEngine.Shutdown()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := cmd.Help(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Execute runs the command tree
func Execute(v string) {
	version = v

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Oops. An error while executing Olympus '%s'\n", err)
		os.Exit(1)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// SetupDebugMode applies the error verbosity flags to the engine
func SetupDebugMode() {
	if appEngine == nil {
		return
	}
	if debugMode {
		appEngine.SetDebugMode(true)
	}
	if verboseErrors {
		appEngine.SetVerboseMode(true)
	}
}

// currentProvider resolves the --provider flag
func currentProvider() (provider.Provider, error) {
	return appEngine.GetProvider(providerID)
}

// operationContext bounds a single source call
func operationContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), opTimeout)
}

// report prints err in the selected output mode and marks the run as failed
func report(err error) {
	exitCode = 1
	if apiMode {
		util.OutputJSON(os.Stdout, "error", nil, err)
		return
	}
	formatter.PrintError(appEngine.FormatError(err))
}

// emit prints data as JSON in API mode, otherwise runs the pretty printer
func emit(data interface{}, pretty func()) {
	if apiMode {
		util.OutputJSON(os.Stdout, "success", data, nil)
		return
	}
	pretty()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode with detailed error information")
	rootCmd.PersistentFlags().BoolVar(&verboseErrors, "verbose-errors", false, "Show function call chains in errors")
	rootCmd.PersistentFlags().BoolVar(&apiMode, "json", false, "Print machine readable JSON")
	rootCmd.PersistentFlags().BoolVar(&tableOutput, "table", false, "Print lists as tables")
	rootCmd.PersistentFlags().StringVarP(&providerID, "provider", "p", "olympus", "Content source to use")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&cloudflare, "cloudflare", false, "Route requests through the Cloudflare bypass transport")
	rootCmd.PersistentFlags().DurationVar(&opTimeout, "timeout", 2*time.Minute, "Upper bound for a whole command")
}
