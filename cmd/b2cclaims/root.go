package main

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "B2C"

type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: logrus.New(),
	}

	cmd := &cobra.Command{
		Use:          "b2cclaims",
		Short:        "Inspect Azure AD B2C claims and endpoints",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "path to a configuration file (json, yaml or toml)")
	cmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newEmailCommand(a),
		newDecodeCommand(a),
		newEndpointsCommand(a),
	)

	return cmd
}

// init loads the .env file when present, binds the environment and sets
// up the logger.
func (a *app) init(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		level = logrus.WarnLevel
	}
	a.log.SetLevel(level)

	return nil
}
