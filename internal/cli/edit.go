package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-partytype/internal/config"
	"github.com/tartampluch/go-partytype/internal/party"
)

// editFromFlags replays the passed flags on a fresh contact, one setter at a
// time, the way a form would fire its change handlers.
func editFromFlags(cmd *cobra.Command) (*party.Edit, error) {
	p, err := patchFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	e := party.NewEdit(party.Defaults(party.DefaultOptions{}))
	if t, ok := p.Type.Get(); ok {
		e.SetType(t)
	}
	if o, ok := p.NameOrder.Get(); ok {
		e.SetNameOrder(o)
	}
	if p.FirstName.IsSet() {
		e.SetFirstName(p.FirstName.Or(""))
	}
	if p.LastName.IsSet() {
		e.SetLastName(p.LastName.Or(""))
	}
	if p.DisplayName.IsSet() {
		e.SetDisplayName(p.DisplayName.Or(""))
	}
	if g, ok := p.Gender.Get(); ok {
		e.SetGender(g)
	}
	if v, ok := p.Active.Get(); ok {
		e.SetActive(v)
	}
	return e, nil
}

func (a *app) composeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Print the display name the given fields produce",
		Long:  "Print the display name the given fields produce, without touching the database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := editFromFlags(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Contact().DisplayName())
			return nil
		},
	}
	addContactFlags(cmd)
	return cmd
}

func (a *app) fieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Show which fields are editable or required for the given values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := editFromFlags(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			a.printFields(out, e.Contact())
			if e.Contact().IsPerson() {
				fmt.Fprintln(out, a.tr.Msg(config.TKeyHelpNameOrder))
			}
			return nil
		},
	}
	addContactFlags(cmd)
	return cmd
}
