package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rates "github.com/malusev998/exchange-rates"
	"github.com/malusev998/exchange-rates/fetchers"
)

const (
	envPrefix         = "EXCHANGE_RATES"
	defaultConfigFile = "./config.yml"
)

type (
	Config struct {
		Ctx context.Context
		// Now is the clock used when --date is not given.
		Now func() time.Time
		// NewSession opens the network session of one run. Defaults to fetchers.NewSession.
		NewSession func(timeout time.Duration) *fetchers.Session
	}

	options struct {
		configFile string
		date       string
		indent     bool
		days       int
	}
)

func Execute(config *Config) error {
	ctx := config.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	rootCmd, err := newRootCommand(config)

	if err != nil {
		return err
	}

	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(config *Config) (*cobra.Command, error) {
	v := viper.New()
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "exchange-rates <num_days>",
		Short:         "PrivatBank EUR/USD NB rate fetcher",
		Long:          "Fetches the National Bank EUR and USD rates for the last num_days days, newest first.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &rates.ArgumentError{
					Value: fmt.Sprint(args),
					Err:   fmt.Errorf("accepts 1 arg, received %d", len(args)),
				}
			}

			days, err := parseDays(args[0])

			if err != nil {
				return err
			}

			opts.days = days

			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfig(v, cmd, opts.configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, config, v, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configFile, "config", defaultConfigFile, "Path to config file")
	flags.StringVar(&opts.date, "date", "", "First (most recent) day of the report, DD.MM.YYYY; defaults to today")
	flags.BoolVar(&opts.indent, "indent", false, "Indent the printed report")
	flags.Bool("debug", false, "Debug flag")
	flags.String("url", fetchers.PrivatBankURL, "PrivatBank API base URL")
	flags.String("provider", "privatbank", "Rate provider")
	flags.Duration("timeout", 0, "Per request timeout, 0 disables it")

	for _, key := range []string{"debug", "url", "provider", "timeout"} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return nil, fmt.Errorf("error while binding flag %s: %w", key, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	rootCmd.SetFlagErrorFunc(negativeDaysFlagError)

	return rootCmd, nil
}

// negativeDaysFlagError reports a bare negative num_days (pflag parses "-3"
// as a shorthand flag) as an ArgumentError.
func negativeDaysFlagError(_ *cobra.Command, err error) error {
	msg := err.Error()

	if !strings.HasPrefix(msg, "unknown shorthand flag") {
		return err
	}

	idx := strings.LastIndex(msg, " in ")

	if idx < 0 {
		return err
	}

	arg := msg[idx+len(" in "):]

	if days, convErr := strconv.Atoi(arg); convErr != nil || days >= 0 {
		return err
	}

	return &rates.ArgumentError{Value: arg, Err: rates.ErrNegativeDays}
}

func parseDays(arg string) (int, error) {
	days, err := strconv.Atoi(arg)

	if err != nil {
		return 0, &rates.ArgumentError{Value: arg, Err: err}
	}

	if days < 0 {
		return 0, &rates.ArgumentError{Value: arg, Err: rates.ErrNegativeDays}
	}

	return days, nil
}

// readConfig loads the YAML config file. The default file is optional, an
// explicitly passed one is not.
func readConfig(v *viper.Viper, cmd *cobra.Command, configFile string) error {
	absolutePath, err := filepath.Abs(configFile)

	if err != nil {
		return err
	}

	if _, err := os.Stat(absolutePath); errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		return nil
	}

	v.SetConfigFile(absolutePath)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error while reading in the config file: %w", err)
	}

	return nil
}
