package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookit/internal/client/client"
	"github.com/dmitrijs2005/bookit/internal/client/config"
	"github.com/dmitrijs2005/bookit/internal/client/holds"
	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bookit/internal/client/services"
	"github.com/dmitrijs2005/bookit/internal/client/session"
	"github.com/dmitrijs2005/bookit/internal/logging"
	"github.com/dmitrijs2005/bookit/internal/timex"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	bookingService services.BookingService
	adminService   services.AdminService
	session        *session.Store
	log            logging.Logger
	db             *sql.DB
	reader         *bufio.Reader
	out            io.Writer

	mu   sync.Mutex
	mode Mode

	// lastSlots is the most recent availability listing; "hold <n>" picks from it.
	lastSlots []models.Slot
	lastQuery models.AvailabilityQuery
	// lastHolds are the hold IDs in the order 'holds' printed them.
	lastHolds []string
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	clock := timex.NewSystemClock()
	sess := session.New(metadata.NewSQLiteRepository(db), clock)
	if err := sess.Load(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	api := client.NewHTTPClient(c.ServerBaseURL, sess,
		client.WithTimeout(c.RequestTimeout),
		client.WithRateLimit(c.RequestsPerSecond, int(c.RequestsPerSecond)+1),
		client.WithLogger(log.With("component", "api")),
	)
	cart := holds.New(holds.WithClock(clock))

	return &App{
		config:         c,
		authService:    services.NewAuthService(api, sess, cart, db, log),
		bookingService: services.NewBookingService(api, cart, db, clock, log),
		adminService:   services.NewAdminService(api, sess),
		session:        sess,
		log:            log,
		db:             db,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) role() models.Role {
	return a.session.UserRole()
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
