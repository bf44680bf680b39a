// Package cli implements the command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/krakend/docs-search/internal/config"
	"github.com/krakend/docs-search/internal/indexing"
	"github.com/krakend/docs-search/internal/render"
	"github.com/krakend/docs-search/tools"
)

// Version is the release version of docs-search
const Version = "0.1.0"

var (
	// Global flags
	configPath string
	indexURL   string
	indexFile  string
	bleveIndex string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "docs-search",
	Short: "Search a documentation site index",
	Long: `docs-search ranks the pages of a documentation site against a query.

The index is a JSON array of {title, content, hierarchy, url} records, loaded
from a URL, a local file, a bleve index directory or the copy compiled into
the binary.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// addSourceFlags registers the flags that override the configured index source
func addSourceFlags(flags *pflag.FlagSet) {
	flags.StringVar(&configPath, "config", "", "Path to config file (default ~/.config/docs-search/config.toml)")
	flags.StringVar(&indexURL, "index-url", "", "Fetch the JSON index from this URL")
	flags.StringVar(&indexFile, "index-file", "", "Read the JSON index from this file")
	flags.StringVar(&bleveIndex, "bleve-index", "", "Read records from this bleve index directory")
}

// loadConfig reads the config file and applies the source flags on top of it
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// A flag replaces whatever source the file selected
	if indexURL != "" || indexFile != "" || bleveIndex != "" {
		cfg.Index.SiteURL = ""
		cfg.Index.URL = indexURL
		cfg.Index.Path = indexFile
		cfg.Index.BlevePath = bleveIndex
	}
	return cfg, nil
}

// openStore loads the configured index. A failed load leaves the store empty.
func openStore(ctx context.Context, cfg *config.Config) *indexing.Store {
	store := cfg.NewStore(tools.NewEmbeddedDataProvider())
	store.Init(ctx)
	return store
}

// terminalRenderer picks styled output for terminals and plain text otherwise
func terminalRenderer(out io.Writer) render.Renderer {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return render.NewTerminal()
	}
	return render.NewPlain()
}

func init() {
	addSourceFlags(rootCmd.PersistentFlags())
}
