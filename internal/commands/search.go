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
	"strings"

	"Olympus/pkg/core"

	"github.com/spf13/cobra"
)

var (
	searchTags []string
	searchPage int
)

var searchCmd = &cobra.Command{
	Use:   "search [title]",
	Short: "Search series by title or browse with filters",
	Long: `Search series by title. Without a title the catalogue is browsed with the
filters given by --tag; use the ids printed by the tags command, e.g.
--tag 12 --tag status-id-1 --tag comic.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prov, err := currentProvider()
		if err != nil {
			report(err)
			return
		}

		query := core.SearchQuery{}
		if len(args) == 1 {
			query.Title = args[0]
		}
		for _, id := range searchTags {
			query.IncludedTags = append(query.IncludedTags, core.ParseTagID(strings.TrimSpace(id)))
		}

		ctx, cancel := operationContext(cmd)
		defer cancel()

		results, err := prov.GetSearchResults(ctx, query, &core.Metadata{Page: searchPage})
		if err != nil {
			report(err)
			return
		}

		title := "Catalogue"
		if query.Title != "" {
			title = fmt.Sprintf("Search Results for '%s'", query.Title)
		}
		emit(results, func() { formatter.PrintPagedResults(title, results) })
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the filters accepted by search",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		prov, err := currentProvider()
		if err != nil {
			report(err)
			return
		}

		ctx, cancel := operationContext(cmd)
		defer cancel()

		sections, err := prov.GetSearchTags(ctx)
		if err != nil {
			report(err)
			return
		}

		emit(sections, func() { formatter.PrintTagSections(sections) })
	},
}

func init() {
	rootCmd.AddCommand(searchCmd, tagsCmd)

	searchCmd.Flags().StringSliceVarP(&searchTags, "tag", "t", nil, "Filter id from the tags command (repeatable)")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "Result page")
}
