package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "interlink"
)

type Config struct {
	Country string         `mapstructure:"country"`
	Catalog *CatalogConfig `mapstructure:"catalog"`
	JSearch *JSearchConfig `mapstructure:"jsearch"`
	Adzuna  *AdzunaConfig  `mapstructure:"adzuna"`
	Server  *ServerConfig  `mapstructure:"server"`
}

type CatalogConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Key      string `mapstructure:"key"`
	KeyFile  string `mapstructure:"key-file"`
}

type JSearchConfig struct {
	Key     string `mapstructure:"key"`
	KeyFile string `mapstructure:"key-file"`
}

type AdzunaConfig struct {
	AppID      string `mapstructure:"app-id"`
	AppKey     string `mapstructure:"app-key"`
	AppKeyFile string `mapstructure:"app-key-file"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "interlink is a matcher ranking internship listings against a student profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// The original deployment configures everything through the environment.
	_ = godotenv.Load()

	envBindings := map[string]string{
		"catalog.endpoint": "SUPABASE_URL",
		"catalog.key":      "SUPABASE_KEY",
		"jsearch.key":      "RAPIDAPI_KEY",
		"adzuna.app-id":    "ADZUNA_APP_ID",
		"adzuna.app-key":   "ADZUNA_APP_KEY",
	}
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is interlink.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// Without a config file the matcher still works from the environment.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}
