package main

import (
	"context"
	"time"

	"github.com/timekeepers/storefront/config"
	"github.com/timekeepers/storefront/internal/app"
	"github.com/timekeepers/storefront/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	storefront := app.New(sigCtx, cfg)

	storefront.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	storefront.Close(ctx)
}
