// Package cli provides the command line interface of the contact book.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-partytype/internal/config"
	"github.com/tartampluch/go-partytype/internal/i18n"
	"github.com/tartampluch/go-partytype/internal/party"
	"github.com/tartampluch/go-partytype/internal/store"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	dbPath string
	debug  bool
	lang   string

	logCloser io.Closer
	db        *sql.DB
	svc       *party.Service
	tr        *i18n.Translator
}

// Execute runs the command line with args and returns the first error.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	a := &app{}
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "partytype",
		Short:         "Contact book that tells persons from organizations",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logCloser = setupLogging(cmd.ErrOrStderr(), a.debug)
			logStartupInfo()
			a.tr = i18n.New(a.lang)
			if !slices.Contains(a.tr.Languages(), a.lang) {
				slog.Warn(config.MsgLangUnknown,
					config.LogKeyComponent, config.CompCLI,
					config.LogKeyLang, a.lang,
				)
			}
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf(config.MsgVersionOutput,
		config.AppName, config.Version, runtime.GOOS, runtime.GOARCH))

	root.PersistentFlags().StringVar(&a.dbPath, config.FlagDB, "", config.FlagDescDB)
	root.PersistentFlags().BoolVar(&a.debug, config.FlagDebug, false, config.FlagDescDebug)
	root.PersistentFlags().StringVar(&a.lang, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)

	root.AddCommand(
		a.createCmd(),
		a.writeCmd(),
		a.showCmd(),
		a.listCmd(),
		a.composeCmd(),
		a.fieldsCmd(),
		a.importCmd(),
		a.exportCmd(),
		a.serveCmd(),
		a.loginCmd(),
		a.manifestCmd(),
	)
	return root
}

// service opens the store on first use.
func (a *app) service() (*party.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	path := a.dbPath
	if path == "" {
		var err error
		if path, err = store.DefaultPath(); err != nil {
			return nil, err
		}
	}

	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	a.db = db
	a.svc = party.NewService(store.NewContactRepository(db), nil)
	return a.svc, nil
}

func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			slog.Warn(config.ErrDBClose,
				config.LogKeyComponent, config.CompCLI,
				config.LogKeyError, err,
			)
		}
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}
