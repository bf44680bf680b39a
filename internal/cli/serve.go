package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/krakend/docs-search/internal/indexing"
	"github.com/krakend/docs-search/internal/render"
	"github.com/krakend/docs-search/internal/trigger"
)

const shutdownTimeout = 5 * time.Second

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve search result fragments over HTTP",
	Long: `Serve the result panel of a documentation search box.

Endpoints:
  GET  /search?q=...       HTML fragment, 204 when the query is too short
  GET  /search.json?q=...  ranked results as JSON
  POST /refresh            reload the index from its source`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store := openStore(ctx, cfg)
		handler := newSearchHandler(store, cfg.Search.MinQueryLength)

		listen := cfg.Server.Listen
		if serveListen != "" {
			listen = serveListen
		}
		server := &http.Server{
			Addr:              listen,
			Handler:           handler.routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("Warning: HTTP shutdown: %v", err)
			}
		}()

		log.Printf("✓ Listening on http://%s", listen)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	},
}

// searchHandler answers search box requests from an index store
type searchHandler struct {
	store      *indexing.Store
	controller *trigger.Controller
}

func newSearchHandler(store *indexing.Store, minQueryLength int) *searchHandler {
	return &searchHandler{
		store:      store,
		controller: trigger.New(store, render.HTML{}, minQueryLength),
	}
}

func (h *searchHandler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", h.search)
	mux.HandleFunc("GET /search.json", h.searchJSON)
	mux.HandleFunc("POST /refresh", h.refresh)
	return mux
}

func (h *searchHandler) search(w http.ResponseWriter, r *http.Request) {
	view := h.controller.Search(r.URL.Query().Get("q"))
	if !view.Visible {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, view.Body)
}

func (h *searchHandler) searchJSON(w http.ResponseWriter, r *http.Request) {
	view := h.controller.Search(r.URL.Query().Get("q"))
	view.Body = ""
	writeJSON(w, http.StatusOK, view)
}

type refreshResponse struct {
	Updated  bool      `json:"updated"`
	Records  int       `json:"records"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
	Error    string    `json:"error,omitempty"`
}

func (h *searchHandler) refresh(w http.ResponseWriter, r *http.Request) {
	updated, err := h.store.Refresh(r.Context(), true)
	snapshot := h.store.Current()
	resp := refreshResponse{
		Updated:  updated,
		Records:  snapshot.Len(),
		Source:   snapshot.Source,
		LoadedAt: snapshot.LoadedAt,
	}
	if err != nil {
		log.Printf("Warning: %v", err)
		resp.Error = err.Error()
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: failed to write response: %v", err)
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Address to listen on (overrides server.listen)")
	rootCmd.AddCommand(serveCmd)
}
