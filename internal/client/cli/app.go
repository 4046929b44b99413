package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/antab/antabcli/internal/client/api"
	"github.com/antab/antabcli/internal/client/config"
	"github.com/antab/antabcli/internal/client/services"
	"github.com/antab/antabcli/internal/client/session"
	"github.com/antab/antabcli/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	profileService services.ProfileService
	tripsService   *services.TripsService
	adminService   *services.AdminService
	userName       string
	Mode           Mode
	reader         *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	store := session.NewStore(db)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	apiClient := api.NewHTTPClient(c.APIBaseURL, store, c.RequestTimeout, logger)

	as := services.NewAuthService(apiClient, store)
	ps := services.NewProfileService(apiClient, store)
	ts := services.NewTripsService(apiClient, store)
	ads := services.NewAdminService(apiClient, store)

	return &App{
		config:         c,
		authService:    as,
		profileService: ps,
		tripsService:   ts,
		adminService:   ads,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {

	log.Println("Welcome to Antab CLI (type 'help' for commands)")

	// A remembered session survives restarts; pick up the cached name.
	a.restoreSession(ctx)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// restoreSession picks up a session left by a previous run with the
// remember flag set. Nothing to restore is not an error.
func (a *App) restoreSession(ctx context.Context) {
	token, err := a.authService.Token(ctx)
	if err != nil || token == "" {
		return
	}
	u, err := a.authService.CurrentUser(ctx)
	if err != nil || u == nil {
		return
	}
	a.userName = u.FullName()
	log.Printf("Welcome back, %s", a.userName)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(ctx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
