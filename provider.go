package rates

import (
	"fmt"
	"strings"
)

// Provider names the upstream rate source. PrivatBank is the only one; the
// fetcher factory switches on it the same way it would for more sources.
type Provider string

const (
	PrivatBankProvider Provider = "PrivatBank"
	EmptyProvider      Provider = ""
)

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "privatbank":
		return PrivatBankProvider, nil
	}

	return EmptyProvider, fmt.Errorf("value %s is not valid Provider", str)
}
