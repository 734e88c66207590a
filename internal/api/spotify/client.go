package spotify

import (
	"context"
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

// Track represents a track pulled from Spotify
type Track struct {
	Title  string
	Artist string
	Year   string
}

// Client wraps the Spotify web API using client credentials
type Client struct {
	id     string
	secret string
	client *spotify.Client
}

// NewClient creates a new Spotify client
func NewClient(id, secret string) *Client {
	return &Client{id: id, secret: secret}
}

// Authenticate authenticates the client with the Spotify API
func (c *Client) Authenticate(ctx context.Context) error {
	if c.id == "" || c.secret == "" {
		return fmt.Errorf("spotify client ID and secret are required")
	}

	config := &clientcredentials.Config{
		ClientID:     c.id,
		ClientSecret: c.secret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain spotify token: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	c.client = spotify.New(httpClient)
	return nil
}

// GetPlaylistTracks gets the tracks from a Spotify playlist URL
func (c *Client) GetPlaylistTracks(ctx context.Context, playlistURL string) ([]Track, string, error) {
	id, err := parseResourceID(playlistURL, "playlist")
	if err != nil {
		return nil, "", err
	}

	playlist, err := c.client.GetPlaylist(ctx, spotify.ID(id))
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch playlist: %w", err)
	}

	var tracks []Track
	for _, item := range playlist.Tracks.Tracks {
		if len(item.Track.Artists) == 0 {
			continue
		}
		tracks = append(tracks, Track{
			Title:  item.Track.Name,
			Artist: item.Track.Artists[0].Name,
			Year:   yearFromReleaseDate(item.Track.Album.ReleaseDate),
		})
	}

	return tracks, playlist.Name, nil
}

// GetAlbumTracks gets the tracks from a Spotify album URL
func (c *Client) GetAlbumTracks(ctx context.Context, albumURL string) ([]Track, string, error) {
	id, err := parseResourceID(albumURL, "album")
	if err != nil {
		return nil, "", err
	}

	album, err := c.client.GetAlbum(ctx, spotify.ID(id))
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch album: %w", err)
	}

	year := yearFromReleaseDate(album.ReleaseDate)
	var tracks []Track
	for _, track := range album.Tracks.Tracks {
		if len(track.Artists) == 0 {
			continue
		}
		tracks = append(tracks, Track{
			Title:  track.Name,
			Artist: track.Artists[0].Name,
			Year:   year,
		})
	}

	return tracks, album.Name, nil
}

// GetTrack gets a single track from a Spotify track URL
func (c *Client) GetTrack(ctx context.Context, trackURL string) (*Track, error) {
	id, err := parseResourceID(trackURL, "track")
	if err != nil {
		return nil, err
	}

	track, err := c.client.GetTrack(ctx, spotify.ID(id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch track: %w", err)
	}
	if len(track.Artists) == 0 {
		return nil, fmt.Errorf("track %s has no artist credit", id)
	}

	return &Track{
		Title:  track.Name,
		Artist: track.Artists[0].Name,
		Year:   yearFromReleaseDate(track.Album.ReleaseDate),
	}, nil
}

// parseResourceID extracts the resource ID from an open.spotify.com URL.
// Handles scheme-less links, ?si= share suffixes, and locale path
// segments like /intl-pt/.
func parseResourceID(rawURL, kind string) (string, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")
	parts := strings.Split(trimmed, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] != kind {
			continue
		}
		if id := strings.Split(parts[i+1], "?")[0]; id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("invalid spotify %s URL: %s", kind, rawURL)
}

func yearFromReleaseDate(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}
