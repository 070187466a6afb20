// End-to-end smoke test against a running romanization server. Exercises
// the full request path (middleware chain, handler, engine) rather than the
// engine in isolation; run it against a local server before cutting a
// release.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/jusunglee/uroman/internal/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("E2E FAILED", "error", err)
		os.Exit(1)
	}
	slog.Info("E2E PASSED")
}

func run() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("e2e")
	baseURL := fs.StringLong("addr", "http://localhost:8080", "Base URL of the server under test")
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("UROMAN_E2E")); err != nil {
		fmt.Fprintln(os.Stderr, ffhelp.Flags(fs))
		return err
	}

	log := logger.New()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	client := &http.Client{Timeout: 10 * time.Second}

	log.Info("Phase 1: health check...")
	if err := checkHealth(ctx, client, *baseURL); err != nil {
		return err
	}

	log.Info("Phase 2: string romanization...")
	strCases := []struct {
		text, lcode, want string
	}{
		{"Ελλάδα", "", "Ellada"},
		{"Москва", "", "Moskva"},
		{"안녕", "", "annyeong"},
		{"नमस्ते", "", "namaste"},
		{"Галичина", "ukr", "Halychyna"},
	}
	for _, c := range strCases {
		got, err := romanizeStr(ctx, client, *baseURL, c.text, c.lcode)
		if err != nil {
			return fmt.Errorf("romanizing %q: %w", c.text, err)
		}
		if got != c.want {
			return fmt.Errorf("romanizing %q (lcode=%q): got %q, want %q", c.text, c.lcode, got, c.want)
		}
		log.Info("verified", "text", c.text, "romanization", got)
	}

	log.Info("Phase 3: edge output with numerals...")
	edges, err := romanizeEdges(ctx, client, *baseURL, "١٢٣")
	if err != nil {
		return err
	}
	if len(edges) != 1 || !edges[0].IsNumeric || edges[0].Text != "123" {
		return fmt.Errorf("numeric edges: got %+v, want single numeric edge 123", edges)
	}
	log.Info("verified numeric span", "value", *edges[0].Value)

	log.Info("Phase 4: invalid format rejected...")
	status, err := postStatus(ctx, client, *baseURL, map[string]string{"text": "x", "format": "bogus"})
	if err != nil {
		return err
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("invalid format: got status %d, want 400", status)
	}

	return nil
}

type edge struct {
	Start     int      `json:"start"`
	End       int      `json:"end"`
	Text      string   `json:"text"`
	Type      string   `json:"type"`
	IsNumeric bool     `json:"is_numeric"`
	Value     *float64 `json:"value"`
}

func checkHealth(ctx context.Context, client *http.Client, base string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: status %d", resp.StatusCode)
	}
	return nil
}

func romanizeStr(ctx context.Context, client *http.Client, base, text, lcode string) (string, error) {
	var resp struct {
		Romanization string `json:"romanization"`
	}
	if err := post(ctx, client, base, map[string]string{"text": text, "lcode": lcode}, &resp); err != nil {
		return "", err
	}
	return resp.Romanization, nil
}

func romanizeEdges(ctx context.Context, client *http.Client, base, text string) ([]edge, error) {
	var resp struct {
		Edges []edge `json:"edges"`
	}
	if err := post(ctx, client, base, map[string]string{"text": text, "format": "edges"}, &resp); err != nil {
		return nil, err
	}
	return resp.Edges, nil
}

func post(ctx context.Context, client *http.Client, base string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/v1/romanize", bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST /api/v1/romanize: status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func postStatus(ctx context.Context, client *http.Client, base string, body any) (int, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/v1/romanize", bytes.NewReader(buf))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
