package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/malusev998/exchange-rates/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cmd.Execute(&cmd.Config{Ctx: ctx})
	stop()

	if err != nil {
		logrus.WithError(err).Fatal("exchange-rates failed")
	}
}
