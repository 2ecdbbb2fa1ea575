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
	"Olympus/pkg/core"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List all available content sources",
	Long:  `Display every registered content source with its version and language.`,
	Run: func(cmd *cobra.Command, args []string) {
		provs := appEngine.AllProviders()

		infos := make([]core.SourceInfo, len(provs))
		for i, p := range provs {
			infos[i] = p.Info()
		}

		emit(infos, func() { formatter.PrintProviderList(provs) })
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
