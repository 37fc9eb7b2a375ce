package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/706f6c6c7578/enigma/internal/config"
)

// newRootCmd builds the command tree. Settings are read from flags, then
// ENIGMA_* environment variables, then the config file.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "enigma",
		Short: "Rotor cipher machine simulator",
		Long: `enigma simulates Enigma-style rotor cipher machines. A machine is described
by a text or YAML file listing its alphabet, slot and pawl counts and rotor
catalogue; the built-in description is the three-rotor Enigma I.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			err := initConfig(v, cfgFile)
			setupLogging(v.GetBool("verbose"))
			if used := v.ConfigFileUsed(); used != "" && err == nil {
				slog.Debug("using config file", "file", used)
			}
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	root.PersistentFlags().String("machine", config.BuiltinName, "machine description used when none is given as argument")
	_ = v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("machine", root.PersistentFlags().Lookup("machine"))

	root.AddCommand(newConvertCmd(v), newCatalogueCmd(v), newVersionCmd())
	return root
}

// initConfig loads configuration from the config file and environment.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("enigma")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigType("yaml")
	v.SetConfigName(".enigma")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
