package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/travel-info-service/config"
	"ulascansenturk/travel-info-service/internal/api/v1/handlers"
	"ulascansenturk/travel-info-service/internal/extract"
	"ulascansenturk/travel-info-service/internal/providers"
	"ulascansenturk/travel-info-service/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	extractor, err := extract.New(conf.Extractor)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create field extractor")
	}

	factory := providers.NewWebServiceFactory(providers.Options{
		WeatherAPIKey:    conf.WeatherAPIKey,
		ExchangeAPIKey:   conf.ExchangeAPIKey,
		WeatherBaseURL:   conf.WeatherBaseURL,
		CountriesBaseURL: conf.CountriesBaseURL,
		ExchangeBaseURL:  conf.ExchangeBaseURL,
		NBPBaseURL:       conf.NBPBaseURL,
		HomeCountry:      conf.HomeCountry,
		Extractor:        extractor,
	}, &http.Client{})

	clientService := service.NewClientService(factory, extractor, conf.HomeCurrency)

	handler := handlers.NewTravelHandler(clientService, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handler,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Str("extractor", conf.Extractor).Msgf("started server on http://%s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
