// internal/report/service.go
package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/inventorypro/insights/internal/analysis"
	"github.com/inventorypro/insights/internal/config"
	"github.com/inventorypro/insights/internal/repository"
	"github.com/inventorypro/insights/internal/storage"
)

// ErrHealthPending gates the consolidated export until the health analysis
// has resolved at least once. No partial document is ever produced.
var ErrHealthPending = errors.New("inventory health analysis has not resolved yet")

// HealthSource yields the last resolved health report, nil when none.
type HealthSource interface {
	HealthResult() *analysis.HealthReportResult
}

// Document is one rendered export artifact.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

// Exporter freezes the repository collections into a snapshot and renders
// reports from it.
type Exporter struct {
	repo    *repository.Inventory
	health  HealthSource
	pdf     *PDFRenderer
	archive storage.ObjectStorage
	now     func() time.Time
}

func NewExporter(repo *repository.Inventory, health HealthSource, cfg config.ExportConfig) *Exporter {
	return &Exporter{
		repo:   repo,
		health: health,
		pdf:    NewPDFRenderer(cfg),
		now:    time.Now,
	}
}

// WithArchive mirrors every rendered document to the object store. Upload
// failures are logged, never fatal: the local artifact is the product.
func (e *Exporter) WithArchive(archive storage.ObjectStorage) *Exporter {
	e.archive = archive
	return e
}

// Snapshot loads the three collections and freezes them, together with the
// aggregates and the current health result, into one immutable dataset.
func (e *Exporter) Snapshot(ctx context.Context) (*Snapshot, error) {
	items, err := e.repo.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot items: %w", err)
	}
	categories, err := e.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot categories: %w", err)
	}
	sold, err := e.repo.SoldItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot sold items: %w", err)
	}

	var health *analysis.HealthReportResult
	if e.health != nil {
		health = e.health.HealthResult()
	}
	return BuildSnapshot(items, categories, sold, health, e.now()), nil
}

// Export renders one report in one format.
func (e *Exporter) Export(ctx context.Context, t Type, format Format) (*Document, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return e.render(ctx, snap, t, format)
}

// ExportBoth renders both formats concurrently from one shared snapshot.
func (e *Exporter) ExportBoth(ctx context.Context, t Type) (*Document, *Document, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	var pdfDoc, xlsxDoc *Document
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pdfDoc, err = e.render(gctx, snap, t, FormatPDF)
		return err
	})
	g.Go(func() error {
		var err error
		xlsxDoc, err = e.render(gctx, snap, t, FormatXLSX)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pdfDoc, xlsxDoc, nil
}

func (e *Exporter) render(ctx context.Context, snap *Snapshot, t Type, format Format) (*Document, error) {
	if t == TypeConsolidated && snap.Health == nil {
		return nil, ErrHealthPending
	}

	doc := &Document{Name: Filename(t, format, snap.GeneratedAt)}
	switch format {
	case FormatPDF:
		data, err := e.pdf.Render(snap, t)
		if err != nil {
			return nil, err
		}
		doc.ContentType = "application/pdf"
		doc.Data = data
	case FormatXLSX:
		wb, err := BuildWorkbook(snap, t)
		if err != nil {
			return nil, err
		}
		buf, err := wb.WriteToBuffer()
		if err != nil {
			return nil, fmt.Errorf("write workbook: %w", err)
		}
		doc.ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		doc.Data = buf.Bytes()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	e.mirror(ctx, doc)
	return doc, nil
}

func (e *Exporter) mirror(ctx context.Context, doc *Document) {
	if e.archive == nil {
		return
	}
	if err := e.archive.Upload(ctx, doc.Name, doc.Data, doc.ContentType); err != nil {
		log.Warn().Err(err).Str("object", doc.Name).Msg("report archive upload failed")
	} else {
		log.Info().Str("object", doc.Name).Msg("report archived")
	}
}

// WriteFile writes the document under dir with its conventional name and
// returns the full path.
func WriteFile(dir string, doc *Document) (string, error) {
	path := filepath.Join(dir, doc.Name)
	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", doc.Name, err)
	}
	return path, nil
}
