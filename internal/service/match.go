package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/1vor/fulltruck-challenge/internal/matching"
	"github.com/1vor/fulltruck-challenge/internal/model"
	"github.com/1vor/fulltruck-challenge/internal/repository"
	"github.com/1vor/fulltruck-challenge/internal/storage"
)

var tracer = otel.Tracer("github.com/1vor/fulltruck-challenge/internal/service")

// ExportResult describes a finished match export.
type ExportResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Rows      int       `json:"rows"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MatchOptions tunes exports.
type MatchOptions struct {
	ExportPageSize  int
	ExportURLExpiry time.Duration
}

// MatchService finds the saved searches a freight satisfies.
type MatchService interface {
	// FindMatches returns one page of matching searches, newest first.
	// It fails with ErrFreightNotFound when freightID is unknown.
	FindMatches(ctx context.Context, freightID int64, req matching.PageRequest) (*matching.Page, error)

	// Export streams every matching search as NDJSON into object storage and
	// returns a presigned download URL. ErrExportDisabled without storage.
	Export(ctx context.Context, freightID int64) (*ExportResult, error)
}

type matchService struct {
	freights repository.FreightRepository
	engine   *matching.Engine
	store    storage.Storage
	metrics  *MatchMetrics
	opts     MatchOptions
	now      func() time.Time
}

// NewMatchService constructs a MatchService. store may be nil, which disables Export.
func NewMatchService(freights repository.FreightRepository, engine *matching.Engine, store storage.Storage, metrics *MatchMetrics, opts MatchOptions) MatchService {
	if opts.ExportPageSize <= 0 {
		opts.ExportPageSize = engine.MaxLimit()
	}
	if opts.ExportURLExpiry <= 0 {
		opts.ExportURLExpiry = 15 * time.Minute
	}
	return &matchService{
		freights: freights,
		engine:   engine,
		store:    store,
		metrics:  metrics,
		opts:     opts,
		now:      time.Now,
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *matchService) freight(ctx context.Context, id int64) (*model.Freight, error) {
	if err := requireID("freight_id", id); err != nil {
		return nil, err
	}
	f, err := s.freights.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, ErrFreightNotFound)
	}
	return f, nil
}

func (s *matchService) FindMatches(ctx context.Context, freightID int64, req matching.PageRequest) (page *matching.Page, err error) {
	ctx, span := tracer.Start(ctx, "MatchService.FindMatches", trace.WithAttributes(
		attribute.Int64("freight.id", freightID),
		attribute.Int("page.limit", req.Limit),
		attribute.Bool("page.keyset", req.Before != nil),
	))
	defer func() { endSpan(span, err) }()

	f, err := s.freight(ctx, freightID)
	if err != nil {
		return nil, err
	}

	page, err = s.engine.Page(ctx, matching.ForFreight(*f), req)
	if err != nil {
		return nil, translate(err, ErrFreightNotFound)
	}

	span.SetAttributes(
		attribute.Int("page.rows", len(page.Items)),
		attribute.Bool("page.has_more", page.HasMore),
	)
	s.metrics.add("page", len(page.Items))
	return page, nil
}

func exportKey(freightID int64) string {
	return fmt.Sprintf("exports/freights/%d/%s.ndjson", freightID, uuid.NewString())
}

func (s *matchService) Export(ctx context.Context, freightID int64) (res *ExportResult, err error) {
	ctx, span := tracer.Start(ctx, "MatchService.Export", trace.WithAttributes(
		attribute.Int64("freight.id", freightID),
	))
	defer func() { endSpan(span, err) }()

	if s.store == nil {
		return nil, ErrExportDisabled
	}
	f, err := s.freight(ctx, freightID)
	if err != nil {
		return nil, err
	}

	key := exportKey(f.ID)
	pred := matching.ForFreight(*f)
	pr, pw := io.Pipe()
	g, gctx := errgroup.WithContext(ctx)

	var rows int
	g.Go(func() error {
		enc := json.NewEncoder(pw)
		n, err := s.engine.Each(gctx, pred, s.opts.ExportPageSize, func(batch []model.FreightSearch) error {
			for i := range batch {
				if err := enc.Encode(batch[i]); err != nil {
					return err
				}
			}
			return nil
		})
		rows = n
		_ = pw.CloseWithError(err)
		return err
	})
	g.Go(func() error {
		_, err := s.store.Put(gctx, key, pr, storage.PutObjectOptions{
			Size:        -1,
			ContentType: "application/x-ndjson",
			Metadata:    map[string]string{"freight-id": strconv.FormatInt(f.ID, 10)},
		})
		_ = pr.CloseWithError(err)
		if err != nil {
			return fmt.Errorf("upload export: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, translate(err, ErrFreightNotFound)
	}

	url, err := s.store.PresignGet(ctx, key, s.opts.ExportURLExpiry)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			slog.Warn("delete unreachable export failed",
				slog.String("key", key),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, fmt.Errorf("presign export: %w", err)
	}

	span.SetAttributes(attribute.Int("export.rows", rows), attribute.String("export.key", key))
	s.metrics.add("export", rows)
	return &ExportResult{
		Key:       key,
		URL:       url,
		Rows:      rows,
		ExpiresAt: s.now().Add(s.opts.ExportURLExpiry).UTC(),
	}, nil
}
