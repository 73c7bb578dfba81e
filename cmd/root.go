// root.go
//
// Cobra root command for packcheck. Every flag can also be supplied through a
// YAML config file or a PACKCHECK_* environment variable.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "PACKCHECK"
	allPacks  = "all"
)

var (
	cfgFile  string // Config file path
	logLevel string // Log verbosity level
	packName string // Reference pack to operate on, or "all"
)

var rootCmd = &cobra.Command{
	Use:          "packcheck",
	Short:        "Validate and browse motorracing definition packs",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.packcheck.yml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error",
		"Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&packName, "pack", allPacks,
		"Reference pack to use: "+strings.Join(packChoices(), ", "))

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
}

// initConfig reads the config file and environment variables, then applies
// them to every flag the user did not set on the command line.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".packcheck")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("using config file %s", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Env names cannot carry dashes.
		if strings.Contains(f.Name, "-") {
			suffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, suffix)); err != nil {
				logrus.Warnf("could not bind env var for %s: %v", f.Name, err)
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				logrus.Warnf("could not apply config value for %s: %v", f.Name, err)
			}
		}
	})
}
