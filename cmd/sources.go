package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Sachin-ora/Interlink/internal/adzuna"
	"github.com/Sachin-ora/Interlink/internal/catalog"
	"github.com/Sachin-ora/Interlink/internal/jsearch"
	"github.com/Sachin-ora/Interlink/internal/matching"
	"github.com/Sachin-ora/Interlink/internal/secrets"
)

// buildService wires the catalog and both external providers into a match
// service. The catalog is mandatory because it also resolves profiles;
// providers with no credentials stay configured but disabled.
func buildService(config *Config, logger *zap.Logger) (*matching.Service, error) {
	if config.Catalog == nil || config.Catalog.Endpoint == "" {
		return nil, fmt.Errorf("catalog endpoint is required (set catalog.endpoint or SUPABASE_URL)")
	}

	catalogKey, err := secrets.Load(secrets.Source{
		Name:  "catalog key",
		Value: config.Catalog.Key,
		File:  config.Catalog.KeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set catalog.key, catalog.key-file or SUPABASE_KEY)", err)
	}

	catalogClient := catalog.New(config.Catalog.Endpoint, catalogKey, logger)

	jsearchKey := optionalSecret(secrets.Source{
		Name:  "jsearch api key",
		Value: configValue(config.JSearch, func(c *JSearchConfig) string { return c.Key }),
		File:  configValue(config.JSearch, func(c *JSearchConfig) string { return c.KeyFile }),
	}, logger)

	adzunaID := configValue(config.Adzuna, func(c *AdzunaConfig) string { return c.AppID })
	adzunaKey := optionalSecret(secrets.Source{
		Name:  "adzuna app key",
		Value: configValue(config.Adzuna, func(c *AdzunaConfig) string { return c.AppKey }),
		File:  configValue(config.Adzuna, func(c *AdzunaConfig) string { return c.AppKeyFile }),
	}, logger)

	// Source order is the deduplication precedence: the catalog is
	// authoritative, then jsearch, then adzuna.
	sources := []matching.Source{
		catalogClient,
		jsearch.New(jsearchKey, logger),
		adzuna.New(adzunaID, adzunaKey, config.Country, logger),
	}

	return matching.NewService(catalogClient, sources, logger), nil
}

// optionalSecret resolves a provider credential, returning empty when it is
// not configured. An unreadable secret file disables the provider as well,
// with a warning, instead of failing the whole process.
func optionalSecret(src secrets.Source, logger *zap.Logger) string {
	if src.Value == "" && src.File == "" {
		return ""
	}

	secret, err := secrets.Load(src)
	if err != nil {
		logger.Warn("disabling provider", zap.String("secret", src.Name), zap.Error(err))
		return ""
	}

	return secret
}

func configValue[T any](cfg *T, get func(*T) string) string {
	if cfg == nil {
		return ""
	}
	return get(cfg)
}
