package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/timekeepers/storefront/config"
	"github.com/timekeepers/storefront/internal/adapter/cartfile"
	"github.com/timekeepers/storefront/internal/adapter/httphandler"
	"github.com/timekeepers/storefront/internal/adapter/httpsource"
	"github.com/timekeepers/storefront/internal/adapter/whatsapp"
	"github.com/timekeepers/storefront/internal/core/cart"
	"github.com/timekeepers/storefront/internal/core/catalog"
	"github.com/timekeepers/storefront/internal/core/normalize"
	"github.com/timekeepers/storefront/internal/core/service"
	"github.com/timekeepers/storefront/internal/core/view"
)

// App wires the storefront core once at startup. There is no teardown
// beyond closing the http server: stores live for the process.
type App struct {
	ctx        context.Context
	cfg        config.Config
	shop       *service.Shop
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initShop()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initShop() {
	source := httpsource.New(
		app.cfg.Catalog.Endpoint,
		app.cfg.Catalog.FetchTimeout,
		app.cfg.Catalog.FetchAttempts,
	)
	repo := catalog.NewRepository(
		source,
		normalize.BrandRules(),
		normalize.CategoryRules(),
	)

	snapshots := cartfile.New(
		app.cfg.Cart.SnapshotPath,
		app.cfg.Cart.SnapshotTTL,
	)
	cartStore := cart.NewStore(snapshots)

	reveal := view.NewReveal(app.cfg.Reveal.Delay)
	linker := whatsapp.New(app.cfg.Checkout.StorePhone)

	app.shop = service.New(repo, cartStore, reveal, linker)
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterShop(mux, app.shop)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

// Run starts the http server and fires the catalog load. The load is
// fire-and-forget: a failed fetch degrades to the fallback catalog
// inside the repository, never an error here.
func (app *App) Run(stopFn context.CancelFunc) {
	go app.shop.Load(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}
