// internal/export/cli.go
//
// Cobra command tree for the dataset export tool. Flags bind to viper so
// every option can also come from EXPORT_* environment variables or a
// config file.

package export

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "imgdle-export",
	Short: "Pull game records from a remote API into a local dataset file",
	Long: `imgdle-export fetches the record list from a remote API and writes
it as the JSON dataset file the game server loads at startup.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context(), Config{
			APIBase: viper.GetString("api"),
			OutFile: viper.GetString("out"),
			Rate:    viper.GetFloat64("rate"),
			Timeout: viper.GetDuration("timeout"),
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./export.yaml)")
	rootCmd.Flags().String("api", "", "remote API base URL (required)")
	rootCmd.Flags().String("out", "records.json", "destination dataset file")
	rootCmd.Flags().Float64("rate", 1, "requests per second against the remote API")
	rootCmd.Flags().Duration("timeout", 60*time.Second, "per-request timeout")

	_ = viper.BindPFlag("api", rootCmd.Flags().Lookup("api"))
	_ = viper.BindPFlag("out", rootCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("rate", rootCmd.Flags().Lookup("rate"))
	_ = viper.BindPFlag("timeout", rootCmd.Flags().Lookup("timeout"))
}

// initConfig reads the optional config file and EXPORT_* env variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("export")
	}
	viper.SetEnvPrefix("EXPORT")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
