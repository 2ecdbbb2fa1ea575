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

var detailsWithChapters bool

var detailsCmd = &cobra.Command{
	Use:   "details [manga-id]",
	Short: "Show the details of a series",
	Long:  `Show title, author, status, genres and description of a series. The manga id is the slug from the series URL.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prov, err := currentProvider()
		if err != nil {
			report(err)
			return
		}

		ctx, cancel := operationContext(cmd)
		defer cancel()

		manga, err := prov.GetMangaDetails(ctx, args[0])
		if err != nil {
			report(err)
			return
		}

		var chapters []core.ChapterInfo
		if detailsWithChapters {
			if chapters, err = prov.GetChapters(ctx, args[0]); err != nil {
				report(err)
				return
			}
		}

		data := map[string]interface{}{"manga": manga}
		if detailsWithChapters {
			data["chapters"] = chapters
		}
		emit(data, func() {
			formatter.PrintMangaInfo(manga, prov)
			if detailsWithChapters {
				formatter.PrintChapterList(chapters)
			}
		})
	},
}

var chaptersCmd = &cobra.Command{
	Use:   "chapters [manga-id]",
	Short: "List every chapter of a series",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prov, err := currentProvider()
		if err != nil {
			report(err)
			return
		}

		ctx, cancel := operationContext(cmd)
		defer cancel()

		chapters, err := prov.GetChapters(ctx, args[0])
		if err != nil {
			report(err)
			return
		}

		emit(chapters, func() {
			formatter.PrintHeader(fmt.Sprintf("Chapters of %s", args[0]))
			formatter.PrintChapterList(chapters)
		})
	},
}

var pagesCmd = &cobra.Command{
	Use:   "pages [manga-id] [chapter-id]",
	Short: "List the page images of a chapter",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		prov, err := currentProvider()
		if err != nil {
			report(err)
			return
		}

		ctx, cancel := operationContext(cmd)
		defer cancel()

		details, err := prov.GetChapterDetails(ctx, args[0], args[1])
		if err != nil {
			report(err)
			return
		}

		emit(details, func() { formatter.PrintChapterPages(details) })
	},
}

var shareCmd = &cobra.Command{
	Use:   "share [manga-id]",
	Short: "Print the share link of a series",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prov, err := currentProvider()
		if err != nil {
			report(err)
			return
		}

		link := prov.GetMangaShareURL(args[0])
		emit(map[string]string{"url": link}, func() { fmt.Println(link) })
	},
}

func init() {
	rootCmd.AddCommand(detailsCmd, chaptersCmd, pagesCmd, shareCmd)

	detailsCmd.Flags().BoolVar(&detailsWithChapters, "chapters", false, "Also list the chapters")
}
