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
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display detailed version information for Olympus, including the log file location.`,
	Run: func(cmd *cobra.Command, args []string) {
		logFile := appEngine.LogFile()

		versionData := map[string]interface{}{
			"version":    version,
			"go_version": runtime.Version(),
			"os":         runtime.GOOS,
			"arch":       runtime.GOARCH,
			"log_file":   "disabled",
		}
		if logFile != "" {
			versionData["log_file"] = logFile
		}

		emit(versionData, func() {
			formatter.PrintVersionInfo(version, runtime.Version(), runtime.GOOS, runtime.GOARCH, logFile)
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
