// Package engine moves contacts in and out of vCard address books.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-partytype/internal/config"
	"github.com/tartampluch/go-partytype/internal/party"
)

// SourceConfig describes where an import reads from.
type SourceConfig struct {
	Mode      string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath string
	WebURL    string
	WebUser   string
	WebPass   string

	// NameOrder applies to imported persons; vCard carries no such rule.
	NameOrder party.NameOrder
}

// ImportStats summarizes one import run.
type ImportStats struct {
	Processed int
	Created   int
	Skipped   int
}

// ContactCreator is the create hook an import feeds.
type ContactCreator interface {
	Create(ctx context.Context, opts party.DefaultOptions, p party.Patch) (party.Contact, error)
}

// Importer reads vCards and creates one contact per card.
type Importer struct {
	Fetcher VCardFetcher
	Service ContactCreator
}

// RunImport reads every card from the configured source. Malformed cards and
// cards that do not make a valid contact are logged and skipped.
func (im *Importer) RunImport(ctx context.Context, cfg SourceConfig) (ImportStats, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgImportStarted)

	if im.Service == nil {
		return ImportStats{}, errors.New(config.ErrServiceMissing)
	}

	reader, err := im.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return ImportStats{}, ctx.Err()
		}
		return ImportStats{}, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	defer func() { _ = reader.Close() }()

	var stats ImportStats
	src := &stickyReader{r: reader}
	decoder := vcard.NewDecoder(src)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if src.err != nil {
			// The stream itself broke; skipping would only spin on the same error.
			return stats, fmt.Errorf("%s: %w", config.ErrVCardParse, src.err)
		}
		if err != nil {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			stats.Skipped++
			continue
		}
		stats.Processed++

		opts, patch := CardToPatch(card)
		opts.NameOrder = cfg.NameOrder
		if _, err := im.Service.Create(ctx, opts, patch); err != nil {
			log.Warn(config.MsgRejectedCard,
				config.LogKeyName, card.PreferredValue(vcard.FieldFormattedName),
				config.LogKeyError, err,
			)
			stats.Skipped++
			continue
		}
		stats.Created++
	}

	log.Info(config.MsgImportSuccess,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.Processed),
			slog.Int(config.LogKeyCreated, stats.Created),
			slog.Int(config.LogKeySkipped, stats.Skipped),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return stats, nil
}

// stickyReader remembers the first read failure other than EOF, so transport
// errors can be told apart from malformed cards.
type stickyReader struct {
	r   io.Reader
	err error
}

func (s *stickyReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && s.err == nil {
		s.err = err
	}
	return n, err
}

func (im *Importer) acquireStream(ctx context.Context, cfg SourceConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if im.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return im.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// CardToPatch maps a vCard onto a creation context and patch.
//
// KIND:org makes an organization named after FN, falling back to ORG. Any
// other kind is a person whose parts come from N, or from FN as last name
// when N is missing.
func CardToPatch(card vcard.Card) (party.DefaultOptions, party.Patch) {
	if strings.EqualFold(card.Value(vcard.FieldKind), string(vcard.KindOrganization)) {
		name := card.PreferredValue(vcard.FieldFormattedName)
		if name == "" {
			// ORG is structured: organization name first, then units.
			name, _, _ = strings.Cut(card.Value(vcard.FieldOrganization), ";")
		}
		return party.DefaultOptions{Type: party.TypeOrganization}, party.Patch{
			Type: party.Some(party.TypeOrganization),
			Name: party.String(strings.TrimSpace(name)),
		}
	}

	p := party.Patch{Type: party.Some(party.TypePerson)}
	if n := card.Name(); n != nil && (n.GivenName != "" || n.FamilyName != "") {
		p.FirstName = party.String(strings.TrimSpace(n.GivenName))
		p.LastName = party.String(strings.TrimSpace(n.FamilyName))
	} else {
		p.LastName = party.String(strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)))
	}

	switch sex, _ := card.Gender(); sex {
	case vcard.SexMale:
		p.Gender = party.Some(party.GenderMale)
	case vcard.SexFemale:
		p.Gender = party.Some(party.GenderFemale)
	}
	return party.DefaultOptions{Type: party.TypePerson}, p
}
