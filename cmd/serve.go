package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/advisor-cli/internal/model"
	"github.com/sells-group/advisor-cli/internal/planner"
	"github.com/sells-group/advisor-cli/internal/store"
)

var (
	servePort    int
	serveOffline bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the planning HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}

		pl := initPlanner(serveOffline)

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/v1/plan", handleCreatePlan(pl, st))
		r.Get("/v1/plans", handleListPlans(st))
		r.Get("/v1/plans/{id}", handleGetPlan(st))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go shutdownOnSignal(ctx, srv, 10*time.Second)

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// shutdownOnSignal drains in-flight requests once the run context is
// canceled. The drain gets its own deadline: the signal context is already
// done, so passing it to Shutdown would abort the drain immediately.
func shutdownOnSignal(ctx context.Context, srv *http.Server, timeout time.Duration) {
	<-ctx.Done()
	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Warn("server shutdown", zap.Error(err))
	}
}

type planRequest struct {
	Profile model.UserProfile `json:"profile"`
	Years   *int              `json:"years,omitempty"`
	Save    bool              `json:"save,omitempty"`
}

func handleCreatePlan(pl *planner.Planner, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body planRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		opts := planner.DefaultOptions()
		opts.Offline = serveOffline
		if body.Years != nil {
			opts.Years = *body.Years
		}

		plan, err := pl.Plan(req.Context(), &body.Profile, opts)
		if err != nil {
			if errors.Is(err, model.ErrInvalidProfile) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			zap.L().Error("plan generation failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "plan generation failed")
			return
		}

		if body.Save {
			if err := st.SavePlan(req.Context(), plan); err != nil {
				zap.L().Error("save plan failed", zap.Error(err))
				writeError(w, http.StatusInternalServerError, "save plan failed")
				return
			}
		}

		writeJSON(w, http.StatusOK, plan)
	}
}

func handleListPlans(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		headers, err := st.ListPlans(req.Context(), store.PlanFilter{
			RiskTolerance: model.RiskTolerance(req.URL.Query().Get("risk")),
		})
		if err != nil {
			zap.L().Error("list plans failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "list plans failed")
			return
		}
		writeJSON(w, http.StatusOK, headers)
	}
}

func handleGetPlan(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		plan, err := st.GetPlan(req.Context(), chi.URLParam(req, "id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "plan not found")
				return
			}
			zap.L().Error("get plan failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "get plan failed")
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	serveCmd.Flags().BoolVar(&serveOffline, "offline", false, "skip live market data, use built-in candidates")
	rootCmd.AddCommand(serveCmd)
}
