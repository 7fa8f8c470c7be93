package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers/fixture"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers/predictapi"
)

const predictAPIName = "predictapi"

// normalizeProviderName returns the upstream name used in metrics and logs.
// Built-in providers are named by what they are, so an unknown PROVIDER value that
// fell back to the http client is still reported as "predictapi".
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	switch provider.(type) {
	case *predictapi.Client:
		return predictAPIName
	case *fixture.Provider:
		return providerFixture
	}
	name := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case name == providerHTTP:
		return predictAPIName
	case name != "":
		return name
	case provider != nil:
		return strings.ToLower(fmt.Sprintf("%T", provider))
	default:
		return "provider"
	}
}
