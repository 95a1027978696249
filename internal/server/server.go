package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-partytype/internal/config"
)

// snapshot is one rendered address book with its HTTP caching metadata.
type snapshot struct {
	data         []byte
	etag         string
	lastModified string // http.TimeFormat
}

// FeedServer publishes the contact address book as a vCard feed.
type FeedServer struct {
	// Written on every refresh, read on every request.
	current atomic.Pointer[snapshot]
	Port    string
}

// NewFeedServer creates a server bound to the given localhost port.
func NewFeedServer(port string) *FeedServer {
	return &FeedServer{Port: port}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *FeedServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleFeed)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serveErr := make(chan error, config.ChannelBufferSize)
	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil
	case err := <-serveErr:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update replaces the published address book.
func (s *FeedServer) Update(data []byte) {
	sum := sha256.Sum256(data)
	snap := &snapshot{
		data:         data,
		etag:         fmt.Sprintf(config.FormatETag, hex.EncodeToString(sum[:])),
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}
	s.current.Store(snap)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, snap.etag,
	)
}

func (s *FeedServer) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	snap := s.current.Load()
	if snap == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	h := w.Header()
	h.Set(config.HeaderContentType, config.MimeTextVCard)
	h.Set(config.HeaderXContentType, config.MimeNoSniff)
	h.Set(config.HeaderCacheControl, config.CacheControlPrivate)
	h.Set(config.HeaderETag, snap.etag)
	h.Set(config.HeaderLastModified, snap.lastModified)

	if notModified(r, snap) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(snap.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

func notModified(r *http.Request, snap *snapshot) bool {
	if match := r.Header.Get(config.HeaderIfNoneMatch); match != "" {
		return match == snap.etag
	}
	since := r.Header.Get(config.HeaderIfModifiedSince)
	if since == "" {
		return false
	}
	clientTime, err := time.Parse(http.TimeFormat, since)
	if err != nil {
		return false
	}
	serverTime, err := time.Parse(http.TimeFormat, snap.lastModified)
	if err != nil {
		return false
	}
	return !serverTime.After(clientTime)
}
