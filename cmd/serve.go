package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assessment and skill-gap API over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log, config := setup()

		engine, err := newEngine(config, log)
		if err != nil {
			log.Fatal("preparing the scoring engine", zap.Error(err))
		}

		srv, err := server.New(engine, server.Options{
			RequestsPerMinute: config.Server.RequestsPerMinute,
			Burst:             config.Server.Burst,
			TrustedProxies:    config.Server.TrustedProxies,
			Version:           appVersion(),
		}, log)
		if err != nil {
			log.Fatal("creating the http server", zap.Error(err))
		}

		log.Info("starting the careerfit api",
			zap.String("version", appVersion()),
			zap.Any("filters", engine.Filters()),
		)

		if err := srv.Run(ctx, config.Server.Listen); err != nil {
			log.Fatal("serving http", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default :8080)")
	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}
