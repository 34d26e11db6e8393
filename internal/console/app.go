package console

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/fleetdesk/internal/authz"
	"github.com/dmitrijs2005/fleetdesk/internal/config"
	"github.com/dmitrijs2005/fleetdesk/internal/datasource"
	"github.com/dmitrijs2005/fleetdesk/internal/events"
	"github.com/dmitrijs2005/fleetdesk/internal/logging"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/activitylogs"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/credentials"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/equipments"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/maintenance"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/metadata"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/roles"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/timesheets"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/users"
	"github.com/dmitrijs2005/fleetdesk/internal/repositories/vendors"
	"github.com/dmitrijs2005/fleetdesk/internal/session"
	"github.com/dmitrijs2005/fleetdesk/internal/store"
)

// App wires the whole client together: store, event bus, repositories,
// session and authorization.
type App struct {
	config *config.Config
	log    logging.Logger

	store *store.Store
	bus   *events.Bus

	users       users.Repository
	roles       roles.Repository
	equipments  equipments.Repository
	maintenance maintenance.Repository
	timesheets  timesheets.Repository
	vendors     vendors.Repository
	logs        activitylogs.Repository

	session *session.Manager
	authz   *authz.Engine

	actor  *session.Actor
	reader *bufio.Reader
}

// NewApp opens (and seeds) the database and builds the command surface.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open store", "path", c.DatabasePath, "err", err)
		return nil, err
	}
	if err := store.Seed(ctx, st.DB()); err != nil {
		_ = st.Close()
		return nil, err
	}

	bus := events.NewBus()
	ds := datasource.New(st.DB())

	ur := users.NewRepository(ds, bus)
	lr := activitylogs.NewRepository(ds, bus)

	sm := session.NewManager(
		credentials.NewSQLiteRepository(st.DB()),
		ur,
		metadata.NewSQLiteRepository(st.DB()),
		lr,
		[]byte(c.SessionSecret),
		c.TokenTTL,
	)

	rr := roles.NewRepository(ds, bus)

	app := &App{
		config:      c,
		log:         log,
		store:       st,
		bus:         bus,
		users:       ur,
		roles:       rr,
		equipments:  equipments.NewRepository(ds, bus),
		maintenance: maintenance.NewRepository(ds, bus),
		timesheets:  timesheets.NewRepository(ds, bus),
		vendors:     vendors.NewRepository(ds, bus),
		logs:        lr,
		session:     sm,
		authz:       authz.NewEngine(rr),
		reader:      bufio.NewReader(os.Stdin),
	}

	// a valid persisted token resumes the previous session
	actor, err := sm.CurrentActor(ctx)
	if err != nil {
		log.Warn(ctx, "failed to restore session", "err", err)
	} else {
		app.actor = actor
	}

	return app, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Warn(ctx, "failed to close store", "err", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.actor != nil
}

func (a *App) getStatus() string {
	if a.actor == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.actor.Name, a.actor.Role)
}
