package fetchers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	rates "github.com/malusev998/exchange-rates"
)

type (
	BaseConfig struct {
		URL    string
		Logger logrus.FieldLogger
	}
	PrivatBankConfig struct {
		BaseConfig
	}
)

func NewRateFetcher(provider rates.Provider, session *Session, config interface{}) (rates.Fetcher, error) {
	switch provider {
	case rates.PrivatBankProvider:
		c, ok := config.(PrivatBankConfig)

		if !ok {
			return nil, fmt.Errorf("invalid config %T for provider %s", config, provider)
		}

		return PrivatBankFetcher{
			Client: session.Client(),
			URL:    c.URL,
			Logger: c.Logger,
		}, nil
	}

	return nil, fmt.Errorf("fetcher %s does not exist", provider)
}
