package main

import (
	"fmt"

	"github.com/MatthewWilkes/openid-connect-azure-b2c/b2c"
)

// configuration reads the B2C configuration from the bound flags, the
// environment and the optional configuration file.
func (a *app) configuration() (b2c.Configuration, error) {
	defaults := b2c.DefaultConfiguration()
	a.v.SetDefault("tenant", defaults.Tenant)
	a.v.SetDefault("flow", defaults.Flow)
	a.v.SetDefault("scopes", defaults.Scopes)

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return b2c.Configuration{}, fmt.Errorf("error reading config file: %w", err)
		}
		a.log.Debugf("configuration read from %s", a.v.ConfigFileUsed())
	}

	var cfg b2c.Configuration
	if err := a.v.Unmarshal(&cfg); err != nil {
		return b2c.Configuration{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return b2c.Configuration{}, err
	}

	return cfg, nil
}
