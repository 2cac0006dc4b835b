// Package server exposes the mortgage engine over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/mortgage-engine/internal/cache"
	"github.com/iwvelando/mortgage-engine/internal/config"
	"github.com/iwvelando/mortgage-engine/internal/engine"
	"github.com/iwvelando/mortgage-engine/pkg/adapters"
	"github.com/iwvelando/mortgage-engine/pkg/constants"
	"github.com/iwvelando/mortgage-engine/pkg/loans"
	"github.com/iwvelando/mortgage-engine/pkg/validation"
	"go.uber.org/zap"
)

// Options configures the handler returned by NewHandler.
type Options struct {
	// Engine defaults to a parallel engine sharing the handler's logger.
	Engine        *engine.Engine
	Cache         cache.Cache // nil disables response caching
	MaxUploadSize int64
	RateLimit     config.RateLimitConfig
	Version       string
}

type handler struct {
	logger        *zap.Logger
	engine        *engine.Engine
	cache         cache.Cache
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the mortgage API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxUploadSize := opts.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	eng := opts.Engine
	if eng == nil {
		eng = engine.NewEngine(logger, true)
	}

	h := &handler{
		logger:        logger,
		engine:        eng,
		cache:         opts.Cache,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
	}

	mux := http.NewServeMux()

	// Market update of a full mortgage state
	mux.HandleFunc("/update-mortgage", h.handleUpdateMortgage)

	// Single annuity payment
	mux.HandleFunc("/calculate-payment", h.handleCalculatePayment)

	mux.HandleFunc("/api/health", h.handleHealth)
	mux.HandleFunc("/api/version", h.handleVersion)

	limiter := newClientLimiter(opts.RateLimit)
	return withRequestID(limiter.middleware(logger, mux))
}

func (h *handler) handleUpdateMortgage(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpdateMortgage"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	body, ok := h.readBody(w, r, op)
	if !ok {
		return
	}
	if h.serveCached(w, r, body, op) {
		return
	}

	var request adapters.UpdateMortgageRequest
	if err := json.Unmarshal(body, &request); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err), op)
		return
	}
	if request.MortgageState == nil || request.MonthlyChanges == nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "request requires mortgage_state and monthly_changes", op)
		return
	}

	state := adapters.ToState(*request.MortgageState)
	warnings := validation.ValidateState(state)

	updated, changes, err := h.engine.ApplyMarketUpdate(r.Context(), state, adapters.ToMarketUpdate(*request.MonthlyChanges))
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("error updating mortgage: %v", err), op)
		return
	}

	response := adapters.UpdateMortgageResponse{
		UpdatedMortgageState: adapters.FromState(updated),
		ChangesApplied:       adapters.FromChangeLog(changes),
		Warnings:             warnings,
	}
	h.logger.Info("mortgage update served",
		zap.String("op", op),
		zap.String("request_id", requestIDFrom(r.Context())),
		zap.String("mortgage", updated.ID),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", time.Since(start)),
	)
	h.respondCached(w, r, body, response, op)
}

func (h *handler) handleCalculatePayment(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculatePayment"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	body, ok := h.readBody(w, r, op)
	if !ok {
		return
	}
	if h.serveCached(w, r, body, op) {
		return
	}

	var request adapters.PaymentCalculationRequest
	if err := json.Unmarshal(body, &request); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err), op)
		return
	}

	payment, err := loans.MonthlyPayment(request.Rate, request.Periods, request.Principal)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("error calculating payment: %v", err), op)
		return
	}
	h.respondCached(w, r, body, adapters.PaymentCalculationResponse{MonthlyPayment: payment}, op)
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": constants.ServiceName,
		"version": h.version,
		"status":  "healthy",
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// readBody reads the request body within the upload limit. It writes the
// error response itself and reports false on failure.
func (h *handler) readBody(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r.Body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return nil, false
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return nil, false
	}
	return buf.Bytes(), true
}

// serveCached writes a cached response for the request if there is one.
func (h *handler) serveCached(w http.ResponseWriter, r *http.Request, body []byte, op string) bool {
	if h.cache == nil {
		return false
	}
	cached, ok, err := h.cache.Get(r.Context(), cache.Key(r.URL.Path, body))
	if err != nil {
		h.logger.Warn("response cache lookup failed",
			zap.String("op", op),
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Error(err),
		)
		return false
	}
	if !ok {
		return false
	}
	w.Header().Set("X-Cache", "HIT")
	h.writeBody(w, http.StatusOK, cached)
	return true
}

// respondCached encodes payload, stores it in the cache and writes it.
func (h *handler) respondCached(w http.ResponseWriter, r *http.Request, body []byte, payload interface{}, op string) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to encode response: %v", err), op)
		return
	}
	if h.cache != nil {
		if err := h.cache.Set(r.Context(), cache.Key(r.URL.Path, body), encoded); err != nil {
			h.logger.Warn("response cache store failed",
				zap.String("op", op),
				zap.String("request_id", requestIDFrom(r.Context())),
				zap.Error(err),
			)
		}
		w.Header().Set("X-Cache", "MISS")
	}
	h.writeBody(w, http.StatusOK, encoded)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("mortgage request failed",
		zap.String("op", op),
		zap.String("request_id", requestIDFrom(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// ListenAndServe serves handler on cfg.Address until ctx is canceled, then
// shuts down gracefully.
func ListenAndServe(ctx context.Context, logger *zap.Logger, cfg *Config, handler http.Handler) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			zap.String("op", "server.ListenAndServe"),
			zap.String("address", cfg.Address),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down HTTP server", zap.String("op", "server.ListenAndServe"))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	<-errCh
	return nil
}
