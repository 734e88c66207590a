package discogs

// Community holds collection statistics for a release
type Community struct {
	Want int `json:"want"`
	Have int `json:"have"`
}

// SearchResult represents one entry from the database search endpoint.
// Search titles come back as "Artist - Title" and the year as a string.
type SearchResult struct {
	ID        int       `json:"id"`
	MasterID  int       `json:"master_id"`
	Title     string    `json:"title"`
	Year      string    `json:"year"`
	Country   string    `json:"country"`
	Format    []string  `json:"format"`
	Label     []string  `json:"label"`
	Genre     []string  `json:"genre"`
	Style     []string  `json:"style"`
	Community Community `json:"community"`
}

// Pagination holds paging information returned by search
type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Items   int `json:"items"`
}

// SearchResponse is the envelope of the database search endpoint
type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	Pagination Pagination     `json:"pagination"`
}

// ReleaseArtist represents an artist credit on a release
type ReleaseArtist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Format represents a release format (Vinyl, CD, ...)
type Format struct {
	Name         string   `json:"name"`
	Qty          string   `json:"qty"`
	Descriptions []string `json:"descriptions"`
}

// Label represents a record label credit on a release
type Label struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	CatNo string `json:"catno"`
}

// Release represents full release details from the releases endpoint
type Release struct {
	ID        int             `json:"id"`
	MasterID  int             `json:"master_id"`
	Title     string          `json:"title"`
	Year      int             `json:"year"`
	Released  string          `json:"released"`
	Country   string          `json:"country"`
	Genres    []string        `json:"genres"`
	Styles    []string        `json:"styles"`
	Formats   []Format        `json:"formats"`
	Labels    []Label         `json:"labels"`
	Artists   []ReleaseArtist `json:"artists"`
	Community Community       `json:"community"`
}
