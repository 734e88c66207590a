package tagger

import (
	"context"
	"fmt"

	"github.com/cheggaaa/pb/v3"

	"udio-tagger/internal/api/discogs"
	"udio-tagger/internal/shared"
)

// NoMatchTag is emitted when no release matched a track
const NoMatchTag = "NO_MATCH"

// ReleaseSource is the catalog surface the builder needs
type ReleaseSource interface {
	SearchReleases(ctx context.Context, title, artist, year string) ([]discogs.SearchResult, error)
	GetRelease(ctx context.Context, id int) (*discogs.Release, error)
}

// TagRow is one output row of the pipeline
type TagRow struct {
	InputTitle string `json:"input_title"`
	UdioTags   string `json:"udio_tags"`
}

// Builder runs the lookup-and-format pipeline over track records
type Builder struct {
	source   ReleaseSource
	maxTags  int
	debug    bool
	progress bool
	warnings *shared.WarningCollector
}

// NewBuilder creates a tag builder backed by a release source
func NewBuilder(source ReleaseSource, maxTags int, warnings *shared.WarningCollector) *Builder {
	if maxTags <= 0 {
		maxTags = DefaultMaxTags
	}
	if warnings == nil {
		warnings = shared.NewWarningCollector(false)
	}
	return &Builder{
		source:   source,
		maxTags:  maxTags,
		warnings: warnings,
	}
}

// SetDebug enables debug logging for the run
func (b *Builder) SetDebug(debug bool) {
	b.debug = debug
}

// SetProgress enables the terminal progress bar
func (b *Builder) SetProgress(progress bool) {
	b.progress = progress
}

// Build processes records sequentially. Lookups are I/O-bound and
// quota-bound, so there is no worker pool; the catalog client's rate
// limiter paces the run. Failures never abort the batch: a track with
// no match gets the NO_MATCH tag and an errored track gets an
// "ERROR: ..." line.
func (b *Builder) Build(ctx context.Context, records []TrackRecord) ([]TagRow, error) {
	rows := make([]TagRow, 0, len(records))

	var bar *pb.ProgressBar
	if b.progress && shared.IsTTY() {
		bar = pb.StartNew(len(records))
		defer bar.Finish()
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		rows = append(rows, TagRow{
			InputTitle: rec.Label(),
			UdioTags:   JoinTags(b.tagsFor(ctx, rec)),
		})
		if bar != nil {
			bar.Increment()
		}
	}

	return rows, nil
}

// tagsFor resolves a single record to its tag list
func (b *Builder) tagsFor(ctx context.Context, rec TrackRecord) []string {
	shared.DebugPrint(b.debug, "looking up %q", rec.Label())

	results, err := b.source.SearchReleases(ctx, rec.Title, rec.Artist, rec.Year)
	if err != nil {
		b.warnings.AddSearchWarning(rec.Label(), err.Error())
		return []string{fmt.Sprintf("ERROR: %v", err)}
	}

	best := ChooseBest(results, rec.Title, rec.Artist)
	if best == nil {
		b.warnings.AddNoMatchWarning(rec.Label())
		return []string{NoMatchTag}
	}
	shared.DebugPrint(b.debug, "best match for %q: release %d (%s)", rec.Label(), best.ID, best.Title)

	release, err := b.source.GetRelease(ctx, best.ID)
	if err != nil {
		b.warnings.AddReleaseFetchWarning(rec.Label(), err.Error())
		return []string{fmt.Sprintf("ERROR: %v", err)}
	}

	return BuildTagList(release, b.maxTags)
}
