package bok

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"PolicyTone/internal/domain/models"
	pkghttp "PolicyTone/pkg/http"
	applogger "PolicyTone/pkg/logger"
	"PolicyTone/pkg/util"
)

const downloadAttempts = 3

// Client fetches Monetary Policy Board minutes from the Bank of Korea
// site. Listing and download are throttled by a fixed per-request delay
// so crawls stay polite.
type Client struct {
	http    *pkghttp.Client
	baseURL string
	listURL string
	delay   time.Duration
	l       *applogger.Logger
}

// Option configures Client.
type Option func(*Client)

// WithDelay sets the pause between consecutive requests.
func WithDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithLogger injects a structured logger.
func WithLogger(l *applogger.Logger) Option {
	return func(c *Client) { c.l = l }
}

// WithTimeout sets the HTTP timeout for list and download requests.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http = pkghttp.NewClient(pkghttp.WithTimeout(timeout))
		}
	}
}

// NewClient creates a minutes client for the given endpoints.
func NewClient(baseURL, listURL string, opts ...Option) *Client {
	c := &Client{
		http:    pkghttp.NewClient(),
		baseURL: baseURL,
		listURL: listURL,
		delay:   500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listResponse struct {
	Rows []struct {
		Title   string `json:"title"`
		Date    string `json:"date"`
		FileURL string `json:"file_url"`
	} `json:"rows"`
}

// ListMinutes returns minutes references for the requested years,
// oldest first within each year. Rows whose date does not parse are
// skipped with a warning rather than failing the whole listing.
func (c *Client) ListMinutes(ctx context.Context, years []int) ([]models.MinutesRef, error) {
	var refs []models.MinutesRef
	for _, year := range years {
		var resp listResponse
		err := c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
			Method: pkghttp.MethodGet,
			URL:    c.listURL,
			QueryParams: map[string][]string{
				"year": {strconv.Itoa(year)},
			},
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("list minutes for %d: %w", year, err)
		}

		for _, row := range resp.Rows {
			t, ok := util.ParseMeetingDate(row.Date)
			if !ok {
				if c.l != nil {
					c.l.Warn("skipping minutes row with unparseable date",
						applogger.String("date", row.Date),
						applogger.String("title", row.Title),
					)
				}
				continue
			}
			refs = append(refs, models.MinutesRef{
				DocumentID: util.FormatMeetingDate(t),
				Title:      row.Title,
				PDFURL:     c.baseURL + row.FileURL,
			})
		}

		c.pause(ctx)
	}
	return refs, nil
}

// DownloadPDF fetches one minutes PDF to destPath, retrying transient
// failures. An existing file is left untouched.
func (c *Client) DownloadPDF(ctx context.Context, ref models.MinutesRef, destPath string) error {
	if _, err := os.Stat(destPath); err == nil {
		if c.l != nil {
			c.l.Debug("pdf already downloaded", applogger.String("document", ref.DocumentID))
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create pdf dir: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= downloadAttempts; attempt++ {
		var body []byte
		err := c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
			Method: pkghttp.MethodGet,
			URL:    ref.PDFURL,
		}, &body)
		if err == nil && !bytes.HasPrefix(body, []byte("%PDF")) {
			err = fmt.Errorf("response is not a pdf (%d bytes)", len(body))
		}
		if err == nil {
			if werr := os.WriteFile(destPath, body, 0o644); werr != nil {
				return fmt.Errorf("write pdf %s: %w", ref.DocumentID, werr)
			}
			return nil
		}

		lastErr = err
		if c.l != nil {
			c.l.Warn("pdf download failed",
				applogger.String("document", ref.DocumentID),
				applogger.Int("attempt", attempt),
				applogger.Error(err),
			)
		}
		c.pause(ctx)
	}
	return fmt.Errorf("download %s after %d attempts: %w", ref.DocumentID, downloadAttempts, lastErr)
}

func (c *Client) pause(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(c.delay):
	}
}
