// Package cli wires the tzconv command tree
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"tzconv/internal/core/version"
	"tzconv/internal/platform/config"
	perr "tzconv/internal/platform/errors"
	"tzconv/internal/platform/logger"
	pnet "tzconv/internal/platform/net"
	ptime "tzconv/internal/platform/time"
	"tzconv/internal/services/convert/domain"
	"tzconv/internal/services/convert/present"
	convertsvc "tzconv/internal/services/convert/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Option tunes the command tree, mostly for tests
type Option func(*app)

// WithClock pins "now"
func WithClock(c ptime.Clock) Option { return func(a *app) { a.clock = c } }

// WithLocal sets the zone used for the local fallback when no local zone is configured
func WithLocal(loc *time.Location) Option { return func(a *app) { a.local = loc } }

// app is the state shared by the commands of one invocation
type app struct {
	clock ptime.Clock
	local *time.Location

	cfg config.Conf
	st  Settings
	svc domain.ConverterPort
	out *present.Printer
}

// reported marks an error the printer already rendered
type reported struct {
	err    error
	strict bool
}

func (r reported) Error() string { return r.err.Error() }
func (r reported) Unwrap() error { return r.err }

// Execute runs the command tree and returns the process exit status
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...Option) int {
	cmd := NewRootCmd(opts...)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var r reported
	if errors.As(err, &r) {
		if !r.strict {
			return 0
		}
		return perr.Exit(r.err)
	}
	fmt.Fprintf(stderr, "tzconv: %v\n", err)
	return perr.Exit(err)
}

// NewRootCmd builds the root command and its subcommands
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{clock: ptime.Now}
	for _, o := range opts {
		o(a)
	}

	cmd := &cobra.Command{
		Use:           "tzconv time origin_timezone [destination_timezone] [day] [month] [year]",
		Short:         "Timezone conversion on the command line",
		Version:       version.Info().Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, args)
		},
	}

	// positional tokens such as a negative year must not be read as flags
	cmd.Flags().SetInterspersed(false)

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default "+config.DefaultPath()+")")
	pf.CountP("verbose", "v", "log more; repeat for more detail (-v info, -vv debug, -vvv trace)")
	pf.Bool("strict-exit", false, "exit non-zero when a conversion fails")
	pf.String("color", string(present.ColorAuto), "colour diagnostics: auto, always or never")
	pf.Bool("current-year-default", false, "default a missing year to the current year instead of the month number")
	pf.Bool("extended-abbreviations", false, "accept every known zone abbreviation as a fixed offset")
	pf.String("local-zone", "", "IANA zone standing in for the local zone when no destination is given")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return perr.InvalidArgf("%v", err)
	})

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c == cmd {
			fmt.Fprintln(c.OutOrStdout(), present.Usage())
			return
		}
		defaultHelp(c, args)
	})

	cmd.AddCommand(a.zonesCmd(), a.serveCmd(), versionCmd())
	return cmd
}

// setup loads configuration, settings and the converter for any command
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return perr.WithField(err, "config")
	}
	appCfg := cfg.Prefix(config.AppPrefix)
	if err := bindFlags(cmd, appCfg); err != nil {
		return err
	}
	st, err := loadSettings(cmd, appCfg)
	if err != nil {
		return err
	}
	logger.SetVerbosity(st.Verbose)

	local := st.Local
	if local == nil {
		local = a.local
	}

	a.cfg, a.st = cfg, st
	a.svc = convertsvc.New(convertsvc.Options{
		Clock:              a.clock,
		Local:              local,
		Extended:           st.Extended,
		CurrentYearDefault: st.CurrentYearDefault,
	})
	a.out = present.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), present.ColorMode(st.Color))

	runID := uuid.NewString()
	cmd.SetContext(pnet.WithRequest(cmd.Context(), runID))
	logger.C(cmd.Context()).Debug().
		Str("command", cmd.Name()).
		Str("config_file", cfg.File()).
		Interface("settings", st).
		Msg("settings resolved")
	return nil
}

// convert is the default action: print help, reject too few tokens,
// warn about extra tokens, then convert
func (a *app) convert(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		a.out.Help()
		return nil
	case 1:
		a.out.Underspecified(1)
		return a.fail(cmd.Context(), perr.Newf(perr.ErrorCodeArgumentCount, "cannot convert timezones with only 1 argument(s) specified"))
	}
	a.out.Overspecified(args)

	res, err := a.svc.Convert(cmd.Context(), domain.FromArgs(args))
	if err != nil {
		a.out.Diagnostic(err)
		return a.fail(cmd.Context(), err)
	}
	if res.Zones.AssumedLocal {
		a.out.AssumedLocal(res.Zones.DestinationKey)
	}
	a.out.Result(res)
	return nil
}

func (a *app) fail(ctx context.Context, err error) error {
	logger.C(ctx).Debug().Err(err).Str("code", perr.CodeOf(err).String()).Msg("conversion failed")
	return reported{err: err, strict: a.st.StrictExit}
}

// Main is the process entry point used by cmd/tzconv
func Main() {
	os.Exit(Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
