package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-partytype/internal/config"
	"github.com/tartampluch/go-partytype/internal/party"
)

// Exporter writes contacts as vCard 4.0.
type Exporter struct {
	Clock party.Clock
}

// Export encodes every contact into w. An empty list writes nothing.
func (ex *Exporter) Export(ctx context.Context, w io.Writer, contacts []party.Contact) error {
	enc := vcard.NewEncoder(w)
	for _, c := range contacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := enc.Encode(ex.Card(c)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}

	slog.DebugContext(ctx, config.MsgExportSuccess,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, len(contacts),
	)
	return nil
}

// Render returns the vCard stream for contacts.
func (ex *Exporter) Render(ctx context.Context, contacts []party.Contact) ([]byte, error) {
	var buf bytes.Buffer
	if err := ex.Export(ctx, &buf, contacts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Card maps a contact onto a vCard. Persons carry N and GENDER; organizations
// carry ORG.
func (ex *Exporter) Card(c party.Contact) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, "4.0")
	card.SetValue(vcard.FieldUID, fmt.Sprintf(config.FormatUID, config.VCardUIDPrefix, c.ID))
	card.SetValue(vcard.FieldFormattedName, c.DisplayName())

	if c.IsPerson() {
		card.SetKind(vcard.KindIndividual)
		card.SetName(&vcard.Name{
			GivenName:  c.FirstName,
			FamilyName: c.LastName,
		})
		switch c.Gender {
		case party.GenderMale:
			card.SetGender(vcard.SexMale, "")
		case party.GenderFemale:
			card.SetGender(vcard.SexFemale, "")
		}
	} else {
		card.SetKind(vcard.KindOrganization)
		card.SetValue(vcard.FieldOrganization, c.Name)
	}

	if ex.Clock != nil {
		card.SetRevision(ex.Clock.Now().UTC())
	}
	return card
}
