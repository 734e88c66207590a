package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"udio-tagger/internal/api/discogs"
	"udio-tagger/internal/config"
	"udio-tagger/internal/core/tagger"
	"udio-tagger/internal/shared"
)

// maxConcurrentJobs bounds simultaneous tagging runs so parallel
// uploads don't trample the Discogs quota
const maxConcurrentJobs = 2

const maxUploadBytes = 10 << 20 // 10 MiB

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Run the web UI for udio-tagger",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, client := initConfigAndClient()
		startWebServer(cfg, client)
	},
}

func init() {
	rootCmd.AddCommand(webCmd)
}

type TagRequest struct {
	Tracks  []tagger.TrackRecord `json:"tracks"`
	MaxTags int                  `json:"maxTags,omitempty"`
}

type TagResponse struct {
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Rows    []tagger.TagRow `json:"rows,omitempty"`
}

type webServer struct {
	cfg    *config.Config
	client *discogs.Client
	jobs   *semaphore.Weighted
}

func startWebServer(cfg *config.Config, client *discogs.Client) {
	server := &webServer{
		cfg:    cfg,
		client: client,
		jobs:   semaphore.NewWeighted(maxConcurrentJobs),
	}

	mux := http.NewServeMux()

	fs := http.FileServer(http.Dir("./web"))
	mux.Handle("/", fs)

	mux.HandleFunc("/api/tags", server.tagsHandler)
	mux.HandleFunc("/api/tags/upload", server.uploadHandler)
	mux.HandleFunc("/api/settings", server.settingsHandler)

	addr := fmt.Sprintf(":%d", cfg.WebPort)
	shared.ColorInfo.Printf("🚀 Starting web server on http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		shared.ColorError.Printf("❌ Failed to start web server: %v\n", err)
	}
}

// runJob processes records under the concurrency bound
func (s *webServer) runJob(r *http.Request, records []tagger.TrackRecord, maxTags int) ([]tagger.TagRow, error) {
	if maxTags <= 0 {
		maxTags = s.cfg.MaxTags
	}

	if err := s.jobs.Acquire(r.Context(), 1); err != nil {
		return nil, fmt.Errorf("request cancelled while waiting for a tagging slot: %w", err)
	}
	defer s.jobs.Release(1)

	builder := tagger.NewBuilder(s.client, maxTags, nil)
	builder.SetDebug(s.cfg.Debug)
	return builder.Build(r.Context(), records)
}

func (s *webServer) tagsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	var req TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Tracks) == 0 {
		writeTagResponse(w, nil, "no tracks provided")
		return
	}

	rows, err := s.runJob(r, req.Tracks, req.MaxTags)
	if err != nil {
		writeTagResponse(w, nil, fmt.Sprintf("Tagging failed: %v", err))
		return
	}

	writeTagResponse(w, rows, "")
}

func (s *webServer) uploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := tagger.ParseCSV(file)
	if err != nil {
		writeTagResponse(w, nil, fmt.Sprintf("Can't parse file: %v", err))
		return
	}
	if len(records) == 0 {
		writeTagResponse(w, nil, "no tracks found in file")
		return
	}

	rows, err := s.runJob(r, records, 0)
	if err != nil {
		writeTagResponse(w, nil, fmt.Sprintf("Tagging failed: %v", err))
		return
	}

	writeTagResponse(w, rows, "")
}

func (s *webServer) settingsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cfg := &config.Config{}
		if err := config.LoadConfig("config.json", cfg); err != nil {
			// A missing file just means defaults
			if !errors.Is(err, os.ErrNotExist) {
				writeTagResponse(w, nil, fmt.Sprintf("Failed to load config: %v", err))
				return
			}
		}
		cfg.ApplyDefaults()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cfg); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	case http.MethodPost:
		var cfg config.Config
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := config.SaveConfig("config.json", &cfg); err != nil {
			writeTagResponse(w, nil, fmt.Sprintf("Failed to save config: %v", err))
			return
		}

		writeTagResponse(w, nil, "")
	default:
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
	}
}

func writeTagResponse(w http.ResponseWriter, rows []tagger.TagRow, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	response := TagResponse{
		Success: errorMsg == "",
		Error:   errorMsg,
		Rows:    rows,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
