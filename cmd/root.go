package cmd

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dloza02/dlo-creative-lab/internal/cache"
	"github.com/dloza02/dlo-creative-lab/internal/config"
	"github.com/dloza02/dlo-creative-lab/internal/favorites"
	"github.com/dloza02/dlo-creative-lab/internal/fetch"
	"github.com/dloza02/dlo-creative-lab/internal/pipeline"
	"github.com/dloza02/dlo-creative-lab/internal/prefs"
	"github.com/dloza02/dlo-creative-lab/internal/store"
	"github.com/dloza02/dlo-creative-lab/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagRefresh bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "creativelab",
	Short: "AI-in-design news reader",
	Long:  "creativelab aggregates AI and design news from multiple feeds into a filterable terminal dashboard.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log fetch and storage details to stderr")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "drop the cached collection before launching")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(storageCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("creativelab %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// session wires the stores and pipeline for one command invocation.
type session struct {
	kv        *store.SQLite
	cacheSt   *cache.Store
	favorites *favorites.Store
	prefs     *prefs.Store
	pipeline  *pipeline.Pipeline
}

func openSession() (*session, error) {
	setupLogging()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kv, err := store.Open(config.StorePath())
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	cacheStore := cache.New(kv)
	client := fetch.NewClient(nil, cfg.TransformEndpoint, cfg.ProxyEndpoint)

	return &session{
		kv:        kv,
		cacheSt:   cacheStore,
		favorites: favorites.New(kv),
		prefs:     prefs.New(kv),
		pipeline:  pipeline.New(cacheStore, client, cfg.SourceURLs()),
	}, nil
}

func (s *session) close() {
	s.kv.Close()
}

func setupLogging() {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
		log.SetOutput(os.Stderr)
		return
	}
	// Keep the TUI clean.
	log.SetOutput(io.Discard)
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if flagRefresh {
		s.cacheSt.Clear()
	}

	return tui.Run(tui.RunOpts{
		Pipeline:   s.pipeline,
		CacheStore: s.cacheSt,
		Favorites:  s.favorites,
		Prefs:      s.prefs,
	})
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
