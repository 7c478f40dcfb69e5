package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rates "github.com/malusev998/exchange-rates"
	"github.com/malusev998/exchange-rates/fetchers"
	"github.com/malusev998/exchange-rates/services"
)

func newLogger(cmd *cobra.Command, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(logrus.InfoLevel)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

func startDate(config *Config, date string) (func() time.Time, error) {
	if date != "" {
		start, err := time.ParseInLocation(rates.DateLayout, date, time.Local)

		if err != nil {
			return nil, fmt.Errorf("invalid --date %q, expected DD.MM.YYYY: %w", date, err)
		}

		return func() time.Time { return start }, nil
	}

	if config.Now != nil {
		return config.Now, nil
	}

	return time.Now, nil
}

func runReport(cmd *cobra.Command, config *Config, v *viper.Viper, opts *options) error {
	logger := newLogger(cmd, v.GetBool("debug"))

	provider, err := rates.ConvertToProviderFromString(v.GetString("provider"))

	if err != nil {
		return err
	}

	now, err := startDate(config, opts.date)

	if err != nil {
		return err
	}

	newSession := config.NewSession

	if newSession == nil {
		newSession = fetchers.NewSession
	}

	session := newSession(v.GetDuration("timeout"))
	defer session.Close()

	fetcher, err := fetchers.NewRateFetcher(provider, session, fetchers.PrivatBankConfig{
		BaseConfig: fetchers.BaseConfig{
			URL:    v.GetString("url"),
			Logger: logger,
		},
	})

	if err != nil {
		return err
	}

	service := services.Service{
		Fetcher: fetcher,
		Now:     now,
		Logger:  logger,
	}

	ctx := cmd.Context()

	if ctx == nil {
		ctx = context.Background()
	}

	report, err := service.Report(ctx, opts.days)

	if err != nil {
		return err
	}

	return printReport(cmd, report, opts.indent)
}

func printReport(cmd *cobra.Command, report rates.Report, indent bool) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())

	if indent {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(report)
}
