package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Sachin-ora/Interlink/internal/logger"
	"github.com/Sachin-ora/Interlink/internal/server"
)

const defaultAddress = ":8000"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the matcher over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", defaultAddress, "address to listen on")

	viper.BindPFlag("server.address", serveCmd.Flags().Lookup("address"))
}

func serve() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the interlink matcher", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	service, err := buildService(config, logger)
	if err != nil {
		logger.Fatal("building the match service", zap.Error(err))
	}

	address := defaultAddress
	if config.Server != nil && config.Server.Address != "" {
		address = config.Server.Address
	}

	srv := server.New(service, logger)
	if err := srv.Run(address); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
