package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dloza02/dlo-creative-lab/internal/cache"
	"github.com/dloza02/dlo-creative-lab/internal/classify"
	"github.com/dloza02/dlo-creative-lab/internal/pipeline"
)

var (
	flagFetchCategory string
	flagFetchFresh    bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and print the article collection without the TUI",
	Long: `Run the full ingestion pipeline headlessly and print the processed
articles, one per line. Useful for scripting and for checking sources.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		if flagFetchFresh {
			s.cacheSt.Clear()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		articles, err := s.pipeline.Load(ctx)
		if err != nil {
			return fmt.Errorf("running pipeline: %w", err)
		}
		articles = pipeline.ApplyFavorites(articles, s.favorites)

		if flagFetchCategory != "" {
			if _, ok := classify.ByID(flagFetchCategory); !ok {
				return fmt.Errorf("unknown category %q", flagFetchCategory)
			}
			articles = pipeline.Filter(articles, flagFetchCategory, s.favorites)
		}

		for _, a := range articles {
			printArticle(a)
		}
		fmt.Printf("\n%d article(s)\n", len(articles))
		return nil
	},
}

func printArticle(a cache.Article) {
	mark := " "
	if a.IsFavorite {
		mark = "*"
	}
	when := "unknown date"
	if !a.Published.IsZero() {
		when = a.Published.Format("2006-01-02 15:04")
	}
	fmt.Printf("%s [%s] %s\n    %s · %s\n    %s\n", mark, a.Category, a.Title, a.Source, when, a.Link)
}

func init() {
	fetchCmd.Flags().StringVar(&flagFetchCategory, "category", "", "only print one category (e.g. ai-design-tools, favorites)")
	fetchCmd.Flags().BoolVar(&flagFetchFresh, "fresh", false, "ignore the cached collection")
}
