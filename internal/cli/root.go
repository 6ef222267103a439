package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "crimecast",
	Short: "Forecast city crime-incident volume from monthly history",
	Long: `Crimecast aggregates crime-incident records into monthly series per city
and crime type, extrapolates a short-horizon forecast with a trend-plus-
baseline heuristic, and renders historical and forecast charts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logger != nil {
			logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.crimecast.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("data", "data/india_crime_data.csv", "path to the incident csv dataset")
	rootCmd.PersistentFlags().String("dsn", "", "postgres DSN for the incident store (overrides --data)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("dsn", rootCmd.PersistentFlags().Lookup("dsn"))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(reportCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".crimecast")
	}

	viper.SetEnvPrefix("CRIMECAST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func initLogger() {
	logConfig := zap.NewProductionConfig()
	if viper.GetBool("verbose") {
		logConfig = zap.NewDevelopmentConfig()
	}

	var err error
	logger, err = logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
}
