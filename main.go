package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"udio-tagger/internal/api/discogs"
	"udio-tagger/internal/api/spotify"
	"udio-tagger/internal/config"
	"udio-tagger/internal/core/tagger"
	"udio-tagger/internal/shared"
)

const toolVersion = "1.0.0"

var (
	discogsToken string
	maxTags      int
	outputPath   string
	debug        bool
	noProgress   bool
)

var rootCmd = &cobra.Command{
	Use:     "udio-tagger",
	Version: toolVersion,
	Short:   "Turn track lists into Udio prompt tags using the Discogs database.",
	Long: fmt.Sprintf(`Udio Tagger (v%s)

Looks up each track (title, artist, year) in the Discogs database,
picks the best-matching release, and emits a comma-delimited tag line
(styles, genres, year, country, format, label) ready to paste into a
generative music prompt.

Input can be a CSV file, pasted "title,artist,year" lines on stdin,
or a Spotify playlist/album/track URL.`, toolVersion),
}

var tagsCmd = &cobra.Command{
	Use:   "tags [file]",
	Short: "Build tag lines from a CSV file or pasted lines on stdin.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, client := initConfigAndClient()

		var records []tagger.TrackRecord
		var err error
		if len(args) == 1 {
			records, err = readRecordsFromFile(args[0])
		} else {
			records, err = readRecordsFromStdin()
		}
		if err != nil {
			shared.ColorError.Printf("❌ Failed to read tracks: %v\n", err)
			os.Exit(1)
		}
		if len(records) == 0 {
			shared.ColorWarning.Println("No tracks to process.")
			return
		}

		runPipeline(cmd.Context(), cfg, client, records)
	},
}

var spotifyCmd = &cobra.Command{
	Use:   "spotify [url]",
	Short: "Build tag lines for a Spotify playlist, album, or track URL.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, client := initConfigAndClient()
		ctx := cmd.Context()

		spotifyClient := spotify.NewClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
		if err := spotifyClient.Authenticate(ctx); err != nil {
			shared.ColorError.Printf("❌ Failed to authenticate with Spotify: %v\n", err)
			os.Exit(1)
		}

		tracks, name, err := fetchSpotifyTracks(ctx, spotifyClient, args[0])
		if err != nil {
			shared.ColorError.Printf("❌ Failed to get tracks from Spotify: %v\n", err)
			os.Exit(1)
		}
		if name != "" {
			shared.ColorInfo.Printf("🎵 Building tags for %q (%d tracks)\n", name, len(tracks))
		}

		records := make([]tagger.TrackRecord, 0, len(tracks))
		for _, t := range tracks {
			records = append(records, tagger.TrackRecord{Title: t.Title, Artist: t.Artist, Year: t.Year})
		}

		runPipeline(ctx, cfg, client, records)
	},
}

// fetchSpotifyTracks resolves any supported Spotify URL to a track list
func fetchSpotifyTracks(ctx context.Context, client *spotify.Client, url string) ([]spotify.Track, string, error) {
	switch {
	case strings.Contains(url, "/playlist/"):
		return client.GetPlaylistTracks(ctx, url)
	case strings.Contains(url, "/album/"):
		return client.GetAlbumTracks(ctx, url)
	case strings.Contains(url, "/track/"):
		track, err := client.GetTrack(ctx, url)
		if err != nil {
			return nil, "", err
		}
		return []spotify.Track{*track}, "", nil
	default:
		return nil, "", fmt.Errorf("unsupported Spotify URL: %s", url)
	}
}

// runPipeline executes the lookup-and-format pipeline and reports results
func runPipeline(ctx context.Context, cfg *config.Config, client *discogs.Client, records []tagger.TrackRecord) {
	if ctx == nil {
		ctx = context.Background()
	}

	warnings := shared.NewWarningCollector(cfg.WarningBehavior != "silent")
	builder := tagger.NewBuilder(client, cfg.MaxTags, warnings)
	builder.SetDebug(debug)
	builder.SetProgress(!noProgress && !debug)

	shared.ColorInfo.Printf("🔎 Looking up %d track(s) on Discogs...\n", len(records))
	rows, err := builder.Build(ctx, records)
	if err != nil {
		shared.ColorError.Printf("❌ Tagging interrupted: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	for _, row := range rows {
		shared.ColorInfo.Println(row.InputTitle)
		fmt.Println("  " + row.UdioTags)
	}

	if out := resolveOutputPath(outputPath, cfg); out != "" {
		if err := writeCSVFile(out, rows); err != nil {
			shared.ColorError.Printf("❌ Failed to write %s: %v\n", out, err)
			os.Exit(1)
		}
		shared.ColorSuccess.Println("✅ Wrote", out)
	}

	warnings.PrintSummary()
	shared.ColorSuccess.Printf("✅ Done: %d track(s) processed.\n", len(rows))
}

// resolveOutputPath picks the CSV destination: the --output flag wins,
// otherwise the configured output location. Empty means no file output.
func resolveOutputPath(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.OutputLocation
}

func writeCSVFile(path string, rows []tagger.TagRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := config.CreateDirIfNotExists(dir); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tagger.WriteCSV(f, rows)
}

// readRecordsFromFile parses a track list file; .csv files get the CSV
// parser, anything else is treated as "title,artist,year" lines.
func readRecordsFromFile(path string) ([]tagger.TrackRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return tagger.ParseCSV(f)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return tagger.ParseLines(string(data)), nil
}

func readRecordsFromStdin() ([]tagger.TrackRecord, error) {
	if shared.IsTTY() {
		shared.ColorPrompt.Println("Paste lines (title,artist,year), then Ctrl-D:")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return tagger.ParseLines(string(data)), nil
}

func initConfigAndClient() (*config.Config, *discogs.Client) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	configFile := "config.json"

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		shared.ColorInfo.Println("✨ Welcome to Udio Tagger! Let's set up your configuration.")

		cfg.DiscogsToken = shared.GetUserInput("Enter your Discogs personal access token (or leave blank for anonymous)", "")

		maxTagsStr := shared.GetUserInput("Max tags per line", strconv.Itoa(cfg.MaxTags))
		if n, err := strconv.Atoi(maxTagsStr); err == nil && n > 0 {
			cfg.MaxTags = n
		} else {
			shared.ColorWarning.Printf("⚠️ Invalid max tags value '%s', using default %d.\n", maxTagsStr, cfg.MaxTags)
		}

		if err := config.SaveConfig(configFile, cfg); err != nil {
			shared.ColorError.Printf("❌ Failed to save initial config: %v\n", err)
		} else {
			shared.ColorSuccess.Println("✅ Configuration saved to", configFile)
		}
	} else {
		if err := config.LoadConfig(configFile, cfg); err != nil {
			shared.ColorError.Printf("❌ Failed to load config from %s: %v\n", configFile, err)
		}
		cfg.ApplyDefaults()
	}

	// .env and environment variables override the config file
	config.LoadEnv(cfg)

	// Command-line flags override everything
	if discogsToken != "" {
		cfg.DiscogsToken = discogsToken
	}
	if maxTags > 0 {
		cfg.MaxTags = maxTags
	}
	cfg.Debug = debug

	if cfg.DiscogsToken == "" {
		shared.ColorWarning.Println("⚠️ No Discogs token configured; anonymous requests have a lower quota.")
	}

	clientConfig := discogs.DefaultConfig()
	clientConfig.Token = cfg.DiscogsToken
	clientConfig.Debug = debug
	return cfg, discogs.NewClientWithConfig(clientConfig)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&discogsToken, "token", "", "Discogs personal access token")
	rootCmd.PersistentFlags().IntVar(&maxTags, "max-tags", 0, "Maximum tags per line")
	rootCmd.PersistentFlags().StringVar(&outputPath, "output", "", "Write results to a CSV file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")

	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(spotifyCmd)
}

func main() {
	shared.InitializeColors()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
