// cmd/pruebas/root.go
package pruebas

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/config"
	"github.com/RamonVargasG/Pruebas-de-Software-A01794580/internal/logger"
)

// cfg and log are resolved once per invocation by the root's
// PersistentPreRunE, before any subcommand runs.
var (
	cfg config.Config
	log *logging.Logger
)

var (
	cfgFile  string
	logLevel string
	debug    bool
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// rootCmd is the base Cobra command for the pruebas application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "pruebas",
	Short: "Batch tabulation utilities",
	Long: `pruebas bundles small batch utilities that read a text or JSON input, tabulate it and
write the result both to the console and to a fixed-name result file in the working directory.`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are already validated at this point; any later failure
		// is not a usage problem.
		cmd.SilenceUsage = true

		loaded, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = loaded
		log = logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cmd.Name())

		if cfg.Debug {
			pp.Fprintln(cmd.ErrOrStderr(), cfg)
		}
		return nil
	},
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "optional config file (yaml, json, toml)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", config.DefaultLogLevel,
		"log level ("+strings.Join(logger.Levels, ", ")+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print the effective configuration before running")

	viper.BindPFlag(config.KeyConfigFile, rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup("debug"))
}
