package cli

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// envDefaults are ambient CLI defaults. They only seed flag defaults; the
// engine itself never reads the environment.
type envDefaults struct {
	Format  string `env:"OZPLAN_FORMAT" envDefault:"console"`
	Verbose bool   `env:"OZPLAN_VERBOSE" envDefault:"false"`
}

// defaults is resolved before any command init so flag defaults pick it up.
var defaults = loadEnvDefaults()

func loadEnvDefaults() envDefaults {
	d := envDefaults{Format: "console"}
	// Bad env vars should not brick the CLI; keep the fallbacks.
	_ = env.Parse(&d)
	return d
}

var (
	log     zerolog.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ozplan",
	Short: "Deterministic retirement projection across super, portfolio, property and cash",
	Long: `ozplan projects retirement outcomes across superannuation, a taxable
portfolio, an optional property and a cash buffer under a chosen set of
economic assumptions, producing a monthly trajectory, KPIs and
policy-driven flags.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", defaults.Verbose, "enable debug logging")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
