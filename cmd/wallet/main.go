package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/jhanaviii/digital-wallet/internal/logger"

	"github.com/jhanaviii/digital-wallet/internal/app"
	"github.com/jhanaviii/digital-wallet/internal/config"
)

func main() {
	_ = godotenv.Load()

	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
