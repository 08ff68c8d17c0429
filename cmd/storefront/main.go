package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/groph-store/internal/app"
	"github.com/fsdevblog/groph-store/internal/config"
	"github.com/fsdevblog/groph-store/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout, conf.IsProduction())

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		l.WithError(err).Fatal("storefront stopped")
	}
}
