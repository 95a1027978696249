package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-partytype/internal/manifest"
)

func (a *app) manifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Print the packaging metadata of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load()
			if err != nil {
				return err
			}
			reqs, err := m.Requires()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			fmt.Fprintf(out, "%s %s\n", bold.Sprint(m.PackageName()), m.Version)
			if m.Description != "" {
				fmt.Fprintln(out, m.Description)
			}
			fmt.Fprintf(out, "download: %s\n", m.DownloadURL())

			fmt.Fprintln(out, bold.Sprint("requires:"))
			for _, r := range reqs {
				fmt.Fprintf(out, "  - %s\n", r)
			}
			fmt.Fprintln(out, bold.Sprint("data files:"))
			for _, f := range m.DataFiles() {
				fmt.Fprintf(out, "  - %s\n", f)
			}
			return nil
		},
	}
}
