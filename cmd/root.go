// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	// Import your CLI subcommands
	"github.com/redjax/sysprobe/internal/commands/historyCommand"
	"github.com/redjax/sysprobe/internal/commands/netCommand"
	"github.com/redjax/sysprobe/internal/commands/reportCommand"
	"github.com/redjax/sysprobe/internal/commands/serveCommand"
	"github.com/redjax/sysprobe/internal/commands/watchCommand"

	// Import your CLI config
	"github.com/redjax/sysprobe/internal/config"
	"github.com/redjax/sysprobe/internal/version"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "sysprobe",
	// A short description of what the command does
	Short: "Inspect the host's hardware and operating system",
	// A longer description for the command
	Long: `Cross-platform hardware and operating system inspector.
Collects platform, OS and hardware information into configurable reports,
watches live usage, records snapshots over time and serves reports over HTTP.`,
	// Adds a help menu you can display with --help/-h
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(rootCmd.Execute())
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML, JSON, TOML or dotenv)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Add other CLI subcommands
	rootCmd.AddCommand(reportCommand.NewReportCommand())
	rootCmd.AddCommand(watchCommand.NewWatchCommand())
	rootCmd.AddCommand(historyCommand.NewHistoryCommand())
	rootCmd.AddCommand(netCommand.NewNetCommand())
	rootCmd.AddCommand(serveCommand.NewServeCommand())
	rootCmd.AddCommand(version.NewVersionCommand())

	// Call the initConfig function when the root command is initialized
	cobra.OnInitialize(initConfig)
}

// Load configuration and logging for the CLI app
func initConfig() {
	config.LoadConfig(rootCmd.PersistentFlags(), cfgFile)

	if debug || config.K.Bool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
