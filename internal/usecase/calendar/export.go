package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ExportResult struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Export uploads a snapshot of the feed as JSON.
type Export struct {
	feed     *Feed
	uploader storage.Uploader
	prefix   string
	clock    timezone.Clock
}

// NewExport accepts a nil uploader: every call then fails with export_disabled.
func NewExport(feed *Feed, uploader storage.Uploader, prefix string, clock timezone.Clock) *Export {
	return &Export{feed: feed, uploader: uploader, prefix: prefix, clock: clock}
}

func (e *Export) Execute(ctx context.Context, in FeedFilter) (*ExportResult, error) {
	if e.uploader == nil {
		return nil, httperr.ErrDisabled("export_disabled")
	}

	events, err := e.feed.Execute(ctx, in)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(dto.CalendarFeed{
		Success: true,
		Events:  events,
		Count:   len(events),
	})
	if err != nil {
		return nil, fmt.Errorf("encode feed: %w", err)
	}

	key := e.objectKey()
	if err := e.uploader.Upload(ctx, key, body, "application/json"); err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	return &ExportResult{Key: key, Count: len(events)}, nil
}

func (e *Export) objectKey() string {
	stamp := e.clock.Current().Format("20060102T150405")
	name := fmt.Sprintf("calendar-%s-%s.json", stamp, uuid.NewString()[:8])
	if e.prefix == "" {
		return name
	}
	return path.Join(e.prefix, name)
}
