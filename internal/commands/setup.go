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
	"fmt"
	"os"

	"Olympus/pkg/config"

	"github.com/spf13/cobra"
)

var setupForce bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write the effective configuration to the config file",
	Long: `Write the effective configuration (defaults, file and OLYMPUS_* environment)
to the path given by --config so it can be edited by hand.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if configPath == "" {
			report(fmt.Errorf("no config path; pass --config"))
			return
		}
		if _, err := os.Stat(configPath); err == nil && !setupForce {
			report(fmt.Errorf("%s already exists; use --force to overwrite", configPath))
			return
		}

		if err := config.SaveYAML(appEngine.Config, configPath); err != nil {
			report(err)
			return
		}

		emit(map[string]string{"path": configPath}, func() {
			formatter.PrintSuccess(fmt.Sprintf("Configuration written to %s", formatter.FormatPath(configPath)))
		})
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&setupForce, "force", false, "Overwrite an existing file")
}
