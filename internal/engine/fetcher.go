package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"

	"github.com/tartampluch/go-partytype/internal/config"
)

// ErrTooLarge is returned by the body of a fetch once it passes the size cap.
var ErrTooLarge = errors.New(config.ErrTooLarge)

// VCardFetcher retrieves a remote vCard stream.
type VCardFetcher interface {
	Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error)
}

// HTTPFetcher downloads address books from CardDAV collections or plain
// .vcf URLs.
type HTTPFetcher struct {
	Client *http.Client
	// MaxBytes caps the body; zero means config.MaxHTTPResponseSize.
	MaxBytes int64
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client:   &http.Client{Timeout: config.HTTPTimeout},
		MaxBytes: config.MaxHTTPResponseSize,
	}
}

// Fetch opens the address book at target. Only http and https are accepted.
// A server answering with an HTML page (usually a login form behind a wrong
// URL) is reported as an error rather than parsed as an empty book.
func (f *HTTPFetcher) Fetch(ctx context.Context, target, user, pass string) (io.ReadCloser, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	// Query parameters may carry tokens.
	log := slog.With(
		config.LogKeyComponent, config.CompFetcher,
		config.LogKeyURL, (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}).String(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrRequest, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	req.Header.Set(config.HeaderAccept, config.AcceptVCard)
	if user != "" || pass != "" {
		req.SetBasicAuth(user, pass)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrNetwork, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn(config.MsgFetchStatus, config.LogKeyStatus, resp.StatusCode)
		return nil, fmt.Errorf("%s: %s", config.ErrStatus, resp.Status)
	}

	ct := resp.Header.Get(config.HeaderContentType)
	if mt, _, err := mime.ParseMediaType(ct); err == nil && mt == config.MimeHTML {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s: %s", config.ErrNotVCard, ct)
	}

	log.Debug(config.MsgDownloading,
		config.LogKeyLength, resp.ContentLength,
		config.LogKeyMime, ct,
	)

	limit := f.MaxBytes
	if limit <= 0 {
		limit = config.MaxHTTPResponseSize
	}
	return &cappedBody{body: resp.Body, left: limit}, nil
}

// cappedBody fails with ErrTooLarge instead of silently truncating, so a
// partial address book is never imported.
type cappedBody struct {
	body io.ReadCloser
	left int64
}

func (c *cappedBody) Read(p []byte) (int, error) {
	if c.left < 0 {
		return 0, ErrTooLarge
	}
	// Read one byte past the cap to tell "exactly full" from "too large".
	if int64(len(p)) > c.left+1 {
		p = p[:c.left+1]
	}
	n, err := c.body.Read(p)
	c.left -= int64(n)
	if c.left < 0 {
		return n + int(c.left), ErrTooLarge
	}
	return n, err
}

func (c *cappedBody) Close() error {
	return c.body.Close()
}
