package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	dservice "PolicyTone/internal/domain/service"
	applogger "PolicyTone/pkg/logger"
)

// TranscriptWriter persists one extracted transcript.
type TranscriptWriter interface {
	Save(documentID, text string) error
}

// MinutesIngestor downloads meeting minutes, extracts their text, and
// stores the transcripts for scoring.
type MinutesIngestor struct {
	source    dservice.MinutesSource
	extractor dservice.TextExtractor
	writer    TranscriptWriter
	pdfDir    string
	l         *applogger.Logger
}

// NewMinutesIngestor creates a new MinutesIngestor instance.
func NewMinutesIngestor(
	source dservice.MinutesSource,
	extractor dservice.TextExtractor,
	writer TranscriptWriter,
	pdfDir string,
	l *applogger.Logger,
) *MinutesIngestor {
	return &MinutesIngestor{
		source:    source,
		extractor: extractor,
		writer:    writer,
		pdfDir:    pdfDir,
		l:         l,
	}
}

// Ingest pulls minutes for the given years. A failing document is
// skipped with a warning so one bad PDF does not abort a whole crawl;
// the returned count is the number of transcripts written.
func (m *MinutesIngestor) Ingest(ctx context.Context, years []int) (int, error) {
	refs, err := m.source.ListMinutes(ctx, years)
	if err != nil {
		return 0, fmt.Errorf("list minutes: %w", err)
	}

	written := 0
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		pdfPath := filepath.Join(m.pdfDir, ref.DocumentID+".pdf")
		if err := m.source.DownloadPDF(ctx, ref, pdfPath); err != nil {
			m.warn("download failed", ref.DocumentID, err)
			continue
		}

		text, err := m.extractor.ExtractText(ctx, pdfPath)
		if err != nil {
			m.warn("text extraction failed", ref.DocumentID, err)
			continue
		}

		if err := m.writer.Save(ref.DocumentID, text); err != nil {
			m.warn("transcript save failed", ref.DocumentID, err)
			continue
		}

		written++
		if m.l != nil {
			m.l.Info("minutes ingested", applogger.String("document", ref.DocumentID))
		}
	}
	return written, nil
}

func (m *MinutesIngestor) warn(msg, documentID string, err error) {
	if m.l != nil {
		m.l.Warn(msg, applogger.String("document", documentID), applogger.Error(err))
	}
}
