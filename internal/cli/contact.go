package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-partytype/internal/config"
	"github.com/tartampluch/go-partytype/internal/party"
)

// addContactFlags registers the editable contact fields on cmd.
func addContactFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String(config.FlagType, "", config.FlagDescType)
	f.String(config.FlagFirstName, "", config.FlagDescFirstName)
	f.String(config.FlagLastName, "", config.FlagDescLastName)
	f.String(config.FlagName, "", config.FlagDescName)
	f.String(config.FlagNameOrder, "", config.FlagDescNameOrder)
	f.String(config.FlagGender, "", config.FlagDescGender)
	f.Bool(config.FlagInactive, false, config.FlagDescInactive)
}

// patchFromFlags turns the flags the user actually passed into a patch.
// Flags left alone stay absent from it.
func patchFromFlags(cmd *cobra.Command) (party.Patch, error) {
	var p party.Patch
	f := cmd.Flags()

	if f.Changed(config.FlagType) {
		v, _ := f.GetString(config.FlagType)
		t, err := party.ParseType(v)
		if err != nil {
			return p, err
		}
		p.Type = party.Some(t)
	}
	if f.Changed(config.FlagFirstName) {
		v, _ := f.GetString(config.FlagFirstName)
		p.FirstName = party.String(v)
	}
	if f.Changed(config.FlagLastName) {
		v, _ := f.GetString(config.FlagLastName)
		p.LastName = party.String(v)
	}
	if f.Changed(config.FlagName) {
		v, _ := f.GetString(config.FlagName)
		p.DisplayName = party.String(v)
	}
	if f.Changed(config.FlagNameOrder) {
		v, _ := f.GetString(config.FlagNameOrder)
		o, err := party.ParseNameOrder(v)
		if err != nil {
			return p, err
		}
		p.NameOrder = party.Some(o)
	}
	if f.Changed(config.FlagGender) {
		v, _ := f.GetString(config.FlagGender)
		g, err := party.ParseGender(v)
		if err != nil {
			return p, err
		}
		p.Gender = party.Some(g)
	}
	if f.Changed(config.FlagInactive) {
		v, _ := f.GetBool(config.FlagInactive)
		p.Active = party.Some(!v)
	}
	return p, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%s: %q", config.ErrInvalidID, arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (a *app) createCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := patchFromFlags(cmd)
			if err != nil {
				return err
			}

			// The requested type is the creation context; the patch itself
			// may still override it.
			var opts party.DefaultOptions
			if t, ok := p.Type.Get(); ok {
				opts.Type = t
			}

			svc, err := a.service()
			if err != nil {
				return err
			}
			c, err := svc.Create(cmd.Context(), opts, p)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), config.OutCreated, c.ID, color.New(color.Bold).Sprint(c.DisplayName()))
			return nil
		},
	}
	addContactFlags(cmd)
	return cmd
}

func (a *app) writeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write <id>...",
		Short: "Update one or more contacts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			p, err := patchFromFlags(cmd)
			if err != nil {
				return err
			}

			svc, err := a.service()
			if err != nil {
				return err
			}
			if err := svc.Write(cmd.Context(), ids, p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), config.OutWritten, len(ids))
			return nil
		},
	}
	addContactFlags(cmd)
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a contact and the state of its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			c, err := svc.Get(cmd.Context(), ids[0])
			if err != nil {
				return err
			}

			a.printFields(cmd.OutOrStdout(), *c)
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			contacts, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(contacts) == 0 {
				fmt.Fprintln(out, config.MsgNoContacts)
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprint(w, config.OutHeader)
			for _, c := range contacts {
				fmt.Fprintf(w, config.OutRow, c.ID, a.tr.Msg(c.Type.LabelKey()), c.DisplayName(), activeMark(c.Active))
			}
			return w.Flush()
		},
	}
}

func activeMark(active bool) string {
	if active {
		return color.New(color.FgGreen).Sprint("yes")
	}
	return color.New(color.FgYellow).Sprint("no")
}

// printFields writes every field of c with its localized label, value and
// state.
func (a *app) printFields(w io.Writer, c party.Contact) {
	for _, s := range party.States(c) {
		fmt.Fprintf(w, config.OutField, a.tr.Msg(s.Field.LabelKey()), a.fieldValue(c, s.Field), a.stateLabel(s))
	}
	fmt.Fprintf(w, config.OutField, a.tr.Msg(config.TKeyFieldActive), activeMark(c.Active), "")
}

func (a *app) fieldValue(c party.Contact, f party.Field) string {
	switch f {
	case party.FieldType:
		return a.tr.Msg(c.Type.LabelKey())
	case party.FieldNameOrder:
		if c.NameOrder == "" {
			return ""
		}
		return a.tr.Msg(c.NameOrder.LabelKey())
	case party.FieldGender:
		if c.Gender == "" {
			return ""
		}
		return a.tr.Msg(c.Gender.LabelKey())
	}
	return c.Value(f)
}

func (a *app) stateLabel(s party.State) string {
	switch {
	case s.ReadOnly:
		return color.New(color.Faint).Sprint(a.tr.Msg(config.TKeyStateReadOnly))
	case s.Required:
		return color.New(color.FgRed).Sprint(a.tr.Msg(config.TKeyStateRequired) + config.OutFlagMarker)
	}
	return a.tr.Msg(config.TKeyStateEditable)
}
