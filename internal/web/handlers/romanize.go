// Package handlers implements the romanization API endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/jusunglee/uroman"
	"github.com/jusunglee/uroman/internal/metrics"
)

// maxTextBytes bounds a single request body.
const maxTextBytes = 1 << 20

type RomanizeHandler struct {
	engine *uroman.Uroman
	log    *slog.Logger
}

func NewRomanizeHandler(engine *uroman.Uroman, log *slog.Logger) *RomanizeHandler {
	return &RomanizeHandler{engine: engine, log: log}
}

type romanizeRequest struct {
	Text          string `json:"text"`
	LCode         string `json:"lcode,omitempty"`
	Format        string `json:"format,omitempty"`
	DecodeUnicode bool   `json:"decode_unicode,omitempty"`
}

type edgeResponse struct {
	Start     int      `json:"start"`
	End       int      `json:"end"`
	Text      string   `json:"text"`
	Type      string   `json:"type"`
	IsNumeric bool     `json:"is_numeric"`
	Value     *float64 `json:"value,omitempty"`
	OrigText  *string  `json:"orig_text,omitempty"`
}

type stringResponse struct {
	Romanization string `json:"romanization"`
	Format       string `json:"format"`
	LCode        string `json:"lcode,omitempty"`
}

type edgesResponse struct {
	Edges  []edgeResponse `json:"edges"`
	Format string         `json:"format"`
	LCode  string         `json:"lcode,omitempty"`
}

// Create handles POST /api/v1/romanize.
func (h *RomanizeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req romanizeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTextBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	formatStr := req.Format
	if formatStr == "" {
		formatStr = "str"
	}
	format, err := uroman.ParseFormat(formatStr)
	if err != nil {
		metrics.RomanizeTotal.WithLabelValues(formatStr, "invalid_format").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	var res uroman.Result
	if req.DecodeUnicode {
		res, err = h.engine.RomanizeEscaped(req.Text, req.LCode, format)
	} else {
		res, err = h.engine.RomanizeWithFormat(req.Text, req.LCode, format)
	}
	metrics.RomanizeDuration.Observe(time.Since(start).Seconds())
	metrics.RomanizeInputRunes.Observe(float64(utf8.RuneCountInString(req.Text)))

	if err != nil {
		metrics.RomanizeTotal.WithLabelValues(format.String(), "error").Inc()
		if errors.Is(err, uroman.ErrInternalInconsistency) {
			h.log.Error("romanization inconsistency", "error", err, "lcode", req.LCode)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	metrics.RomanizeTotal.WithLabelValues(format.String(), "ok").Inc()

	// Only the edges format carries exactly the winning path, so it is the
	// one place fallback usage can be counted without double-counting.
	if format == uroman.FormatEdges {
		for _, e := range res.Edges {
			if e.Type == uroman.TypeUnmatched {
				metrics.RomanizeFallbackEdges.Inc()
			}
		}
	}

	if format == uroman.FormatStr {
		writeJSON(w, http.StatusOK, stringResponse{
			Romanization: res.Str,
			Format:       format.String(),
			LCode:        req.LCode,
		})
		return
	}
	edges := lo.Map(res.Edges, func(e uroman.Edge, _ int) edgeResponse {
		return edgeResponse{
			Start:     e.Start,
			End:       e.End,
			Text:      e.Text,
			Type:      e.Type,
			IsNumeric: e.IsNumeric,
			Value:     e.Value,
			OrigText:  e.OrigText,
		}
	})
	if edges == nil {
		edges = []edgeResponse{}
	}
	writeJSON(w, http.StatusOK, edgesResponse{
		Edges:  edges,
		Format: format.String(),
		LCode:  req.LCode,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
