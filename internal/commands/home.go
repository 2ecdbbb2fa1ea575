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

	"Olympus/pkg/core"

	"github.com/spf13/cobra"
)

var moreOffset int

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the home page sections",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		prov, err := currentProvider()
		if err != nil {
			report(err)
			return
		}

		ctx, cancel := operationContext(cmd)
		defer cancel()

		var sections []core.HomeSection
		err = prov.GetHomePageSections(ctx, func(section core.HomeSection) {
			sections = append(sections, section)
			if !apiMode {
				formatter.PrintHomeSection(section)
			}
		})
		if err != nil {
			report(err)
			return
		}

		emit(sections, func() {})
	},
}

var moreCmd = &cobra.Command{
	Use:   "more [section-id]",
	Short: "Page through a home section",
	Long:  `Page through a home section. Only the new_chapters section has more pages.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prov, err := currentProvider()
		if err != nil {
			report(err)
			return
		}

		ctx, cancel := operationContext(cmd)
		defer cancel()

		results, err := prov.GetViewMoreItems(ctx, args[0], &core.Metadata{Offset: moreOffset})
		if err != nil {
			report(err)
			return
		}

		emit(results, func() {
			formatter.PrintPagedResults(fmt.Sprintf("Section %s, page %d", args[0], results.Metadata.Offset), results)
		})
	},
}

func init() {
	rootCmd.AddCommand(homeCmd, moreCmd)

	moreCmd.Flags().IntVar(&moreOffset, "offset", 0, "Cursor printed by the previous page")
}
