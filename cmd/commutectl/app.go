package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/fleetdemo/commute-benefits/internal/core/domain"
	"github.com/fleetdemo/commute-benefits/internal/core/ports"
	"github.com/fleetdemo/commute-benefits/internal/core/service"
	"github.com/fleetdemo/commute-benefits/internal/infrastructure/commuteapi"
	"github.com/fleetdemo/commute-benefits/internal/infrastructure/db/boltdb"
	"github.com/fleetdemo/commute-benefits/internal/infrastructure/queue"
	"github.com/fleetdemo/commute-benefits/internal/pkg/config"
)

// The current session id is kept under a reserved profile owner.
const (
	cliOwner     = "_cli"
	keySessionID = "session_id"
)

var errNotLoggedIn = errors.New("not logged in, run `commutectl login` first")

// app holds what every command needs once the profile file is open.
type app struct {
	env  envconfig.Lookuper
	out  io.Writer
	log  zerolog.Logger
	now  func() time.Time
	opts struct {
		profile string
		api     string
	}

	stores   *boltdb.Stores
	consoles *service.ConsoleRegistry
	sessions *service.SessionService
	reports  ports.ReportService
}

func run(ctx context.Context, args []string, env envconfig.Lookuper, out io.Writer, log zerolog.Logger) error {
	a := &app{env: env, out: out, log: log, now: time.Now}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(ctx)
	if a.stores != nil {
		if cerr := a.stores.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("close profile")
		}
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "commutectl",
		Short:        "Commute benefits enrollment console",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.opts.profile, "profile", "", "profile file (default $PROFILE_PATH)")
	root.PersistentFlags().StringVar(&a.opts.api, "api", "", "commute API base URL (default $COMMUTE_API_BASE)")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.employeesCmd(),
		a.enrollCmd(),
		a.cancelCmd(),
		a.poolCmd(),
		a.reportCmd(),
	)
	return root
}

// open loads configuration, opens the profile file and wires the services.
func (a *app) open(ctx context.Context) error {
	cfg, err := config.LoadCLIWith(ctx, a.env)
	if err != nil {
		return err
	}
	if a.opts.profile != "" {
		cfg.ProfilePath = a.opts.profile
	}
	if a.opts.api != "" {
		cfg.CommuteAPI.BaseURL = a.opts.api
	}

	client, err := commuteapi.New(commuteapi.Config{
		BaseURL: cfg.CommuteAPI.BaseURL,
		Timeout: cfg.CommuteAPI.Timeout,
		RPS:     cfg.CommuteAPI.RPS,
	}, a.log.With().Str("component", "commuteapi").Logger())
	if err != nil {
		return err
	}

	stores, err := boltdb.Open(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("open profile %s: %w", cfg.ProfilePath, err)
	}
	a.stores = stores

	a.consoles = service.NewConsoleRegistry(service.ConsoleDeps{
		API:      client,
		Recorder: queue.NewLogRecorder(a.log.With().Str("component", "audit").Logger()),
		OptionID: domain.OptionID(cfg.DefaultOptionID),
		Log:      a.log,
	}, stores)
	// The signed session token is only meaningful to the HTTP service.
	a.sessions = service.NewSessionService(client, stores, a.consoles, uuid.NewString(), 0, a.log)
	a.reports = service.NewReportService(client, stores)
	return nil
}

// current returns the active session id and its username. An expired
// session is closed and reported as such.
func (a *app) current(ctx context.Context) (sid, username string, err error) {
	sid, ok, err := a.stores.Profile(cliOwner).Get(ctx, keySessionID)
	if err != nil {
		return "", "", err
	}
	if !ok || sid == "" {
		return "", "", errNotLoggedIn
	}

	kv := a.stores.Session(sid)
	if raw, ok, _ := kv.Get(ctx, domain.KeyExpiresAt); ok {
		if exp, err := strconv.ParseInt(raw, 10, 64); err == nil && a.now().Unix() >= exp {
			_ = a.forget(ctx, sid)
			return "", "", domain.ErrSessionExpired
		}
	}
	username, _, err = kv.Get(ctx, domain.KeyUsername)
	if err != nil {
		return "", "", err
	}
	return sid, username, nil
}

func (a *app) console(ctx context.Context) (ports.Console, error) {
	sid, username, err := a.current(ctx)
	if err != nil {
		return nil, err
	}
	return a.consoles.Get(sid, username), nil
}

func (a *app) forget(ctx context.Context, sid string) error {
	if err := a.sessions.Logout(ctx, sid); err != nil {
		return err
	}
	return a.stores.Profile(cliOwner).Delete(ctx, keySessionID)
}

func parseEmployeeID(s string) (domain.EmployeeID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || !domain.EmployeeID(n).Valid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidEmployeeID, s)
	}
	return domain.EmployeeID(n), nil
}
