// Package server exposes the projection engine over a small JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mdjourney/goal-forecast/internal/projection"
	"github.com/mdjourney/goal-forecast/pkg/constants"
	"github.com/mdjourney/goal-forecast/pkg/currency"
	"github.com/mdjourney/goal-forecast/pkg/holdings"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the projection API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Projection API endpoint
	mux.HandleFunc("/api/projection", h.handleProjection)

	// Last-resort rate snapshot, for clients that want to show it
	mux.HandleFunc("/api/rates/fallback", h.handleFallbackRates)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type projectionRequest struct {
	Accounts      []accountPayload   `json:"accounts"`
	TargetAmount  float64            `json:"targetAmount,omitempty"`
	TargetDate    string             `json:"targetDate,omitempty"`
	GrowthRate    float64            `json:"growthRate,omitempty"`
	Rates         map[string]float64 `json:"rates,omitempty"`
	TimelineYears int                `json:"timelineYears,omitempty"`
}

type accountPayload struct {
	Name         string   `json:"name"`
	Balance      float64  `json:"balance"`
	Currency     string   `json:"currency"`
	Investment   bool     `json:"investment"`
	InterestRate *float64 `json:"interestRate,omitempty"`
}

type projectionResponse struct {
	Result     projection.Result              `json:"result"`
	Timeline   []projection.TimelinePoint     `json:"timeline"`
	Milestones []projection.MilestoneProgress `json:"milestones"`
	Warnings   []string                       `json:"warnings,omitempty"`
	Duration   string                         `json:"duration"`
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var req projectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse request: %v", err))
		return
	}

	params, warnings, err := h.buildParameters(req)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	accounts, err := convertAccounts(req.Accounts)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	result := projection.Calculate(h.logger, accounts, params, now)

	timelineYears := req.TimelineYears
	if timelineYears <= 0 {
		timelineYears = constants.DefaultTimelineYears
	}
	timeline := projection.Timeline(h.logger, accounts, result.MonthlyContributionNeeded,
		timelineYears, params.GrowthRate, params.Rates, now)

	h.writeJSON(w, http.StatusOK, projectionResponse{
		Result:     result,
		Timeline:   timeline,
		Milestones: projection.MilestoneLadder(result.CurrentNetWorthUSD),
		Warnings:   warnings,
		Duration:   time.Since(start).String(),
	})
}

// buildParameters fills projection parameters from the request, applying the
// application defaults for anything unset. Unknown rate keys are skipped and
// reported as warnings rather than failing the request.
func (h *handler) buildParameters(req projectionRequest) (projection.Parameters, []string, error) {
	params := projection.DefaultParameters()

	if req.TargetAmount != 0 {
		params.TargetAmount = req.TargetAmount
	}
	if req.GrowthRate != 0 {
		params.GrowthRate = req.GrowthRate
	}
	if req.TargetDate != "" {
		targetDate, err := time.Parse(constants.DateLayout, req.TargetDate)
		if err != nil {
			return projection.Parameters{}, nil, fmt.Errorf("failed to parse target date %s: expected %s",
				req.TargetDate, constants.DateLayout)
		}
		params.TargetDate = targetDate
	}

	var warnings []string
	if len(req.Rates) > 0 {
		rates := make(currency.Rates, len(req.Rates))
		for key, rate := range req.Rates {
			code, err := currency.ParseCode(key)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("rates: %v; entry ignored", err))
				continue
			}
			rates[code] = rate
		}
		rates[currency.Base] = 1
		params.Rates = rates
	}

	return params, warnings, nil
}

func convertAccounts(payloads []accountPayload) ([]holdings.Account, error) {
	accounts := make([]holdings.Account, 0, len(payloads))
	for i, payload := range payloads {
		code, err := currency.ParseCode(payload.Currency)
		if err != nil {
			name := payload.Name
			if name == "" {
				name = fmt.Sprintf("account %d", i+1)
			}
			return nil, fmt.Errorf("%s: %v", name, err)
		}
		accounts = append(accounts, holdings.Account{
			Name:         payload.Name,
			Balance:      payload.Balance,
			Currency:     code,
			Investment:   payload.Investment,
			InterestRate: payload.InterestRate,
		})
	}
	return accounts, nil
}

func (h *handler) handleFallbackRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"base":  currency.Base,
		"rates": currency.FallbackRates,
		"note":  "static last-resort defaults, not live rates",
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.logger.Warn("request failed",
		zap.String("op", "server.respondError"),
		zap.Int("status", status),
		zap.String("message", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
