package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-partytype/internal/config"
	"github.com/tartampluch/go-partytype/internal/engine"
	"github.com/tartampluch/go-partytype/internal/party"
	"github.com/tartampluch/go-partytype/internal/server"
	"github.com/zalando/go-keyring"
)

func (a *app) importCmd() *cobra.Command {
	var (
		file, url, user, pass string
		order                 string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create contacts from a vCard file or URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := engine.SourceConfig{
				Mode:      config.SourceModeLocal,
				LocalPath: file,
			}
			if url != "" {
				cfg = engine.SourceConfig{
					Mode:    config.SourceModeWeb,
					WebURL:  url,
					WebUser: user,
					WebPass: pass,
				}
				if user != "" && pass == "" {
					cfg.WebPass = storedPassword(user)
				}
			}
			if order != "" {
				o, err := party.ParseNameOrder(order)
				if err != nil {
					return err
				}
				cfg.NameOrder = o
			}

			svc, err := a.service()
			if err != nil {
				return err
			}
			im := &engine.Importer{Fetcher: engine.NewHTTPFetcher(), Service: svc}
			stats, err := im.RunImport(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), config.OutImported, stats.Created, stats.Processed, stats.Skipped)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&file, config.FlagFile, "", config.FlagDescFile)
	f.StringVar(&url, config.FlagURL, "", config.FlagDescURL)
	f.StringVar(&user, config.FlagUser, "", config.FlagDescUser)
	f.StringVar(&pass, config.FlagPassword, "", config.FlagDescPassword)
	f.StringVar(&order, config.FlagNameOrder, "", config.FlagDescNameOrder)
	cmd.MarkFlagsMutuallyExclusive(config.FlagFile, config.FlagURL)
	cmd.MarkFlagsOneRequired(config.FlagFile, config.FlagURL)
	return cmd
}

// storedPassword reads the keyring. A missing entry means anonymous access,
// so failures are only logged.
func storedPassword(user string) string {
	p, err := keyring.Get(config.KeyringService, user)
	if err != nil {
		slog.Warn(config.MsgPassFail,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyUser, user,
			config.LogKeyError, err,
		)
		return ""
	}
	return p
}

func (a *app) loginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the password used by web imports in the OS keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return errors.New(config.ErrUserRequired)
			}
			if err := keyring.Set(config.KeyringService, user, pass); err != nil {
				return fmt.Errorf("%s: %w", config.ErrKeyringSave, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.OutPassSaved, user)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, config.FlagUser, "", config.FlagDescUser)
	cmd.Flags().StringVar(&pass, config.FlagPassword, "", config.FlagDescPassword)
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every contact as vCard 4.0",
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

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.OpenFile(output, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
				if err != nil {
					return fmt.Errorf("%s: %w", config.ErrOutputFile, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			ex := &engine.Exporter{Clock: party.RealClock{}}
			if err := ex.Export(cmd.Context(), w, contacts); err != nil {
				return err
			}

			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), config.OutExported, len(contacts), color.New(color.FgGreen).Sprint(output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, config.FlagOutput, "o", "", config.FlagDescOutput)
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Publish the contact book as a vCard feed on localhost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n, err := strconv.Atoi(port); err != nil || n < config.MinPort || n > config.MaxPort {
				return fmt.Errorf("%s: %q", config.ErrPortRange, port)
			}
			svc, err := a.service()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			srv := server.NewFeedServer(port)
			ex := &engine.Exporter{Clock: party.RealClock{}}

			n, err := publish(ctx, svc, ex, srv)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), config.OutServing, n, config.LocalhostBindAddr, port, config.RouteRoot)

			go refreshFeed(ctx, svc, ex, srv, config.FeedRefreshInterval)
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&port, config.FlagPort, config.DefaultPort, config.FlagDescPort)
	return cmd
}

// publish renders the current contacts into srv and returns how many there
// were.
func publish(ctx context.Context, svc *party.Service, ex *engine.Exporter, srv *server.FeedServer) (int, error) {
	contacts, err := svc.List(ctx)
	if err != nil {
		return 0, err
	}
	data, err := ex.Render(ctx, contacts)
	if err != nil {
		return 0, err
	}
	srv.Update(data)
	return len(contacts), nil
}

// refreshFeed republishes every interval until ctx is done, so edits made
// from another process show up in the feed.
func refreshFeed(ctx context.Context, svc *party.Service, ex *engine.Exporter, srv *server.FeedServer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := publish(ctx, svc, ex, srv); err != nil && ctx.Err() == nil {
				slog.Error(config.ErrContactList,
					config.LogKeyComponent, config.CompCLI,
					config.LogKeyError, err,
				)
			}
		}
	}
}
