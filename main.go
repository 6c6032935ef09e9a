package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"

	"github.com/ahmetyanpar/orbitrates/controller/converter"
	"github.com/ahmetyanpar/orbitrates/controller/preferences"
	_ "github.com/ahmetyanpar/orbitrates/docs"
	"github.com/ahmetyanpar/orbitrates/service/coingecko"
	"github.com/ahmetyanpar/orbitrates/service/dispatcher"
	"github.com/ahmetyanpar/orbitrates/service/frankfurter"
	"github.com/ahmetyanpar/orbitrates/storage"
	"github.com/ahmetyanpar/orbitrates/storage/memory"
	"github.com/ahmetyanpar/orbitrates/storage/persistence"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//	@title			OrbitRates Converter
//	@version		1.0
//	@description	Fiat and crypto currency converter bridging crypto pairs through USD

// @host		localhost:3000
func main() {
	content, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Error().Err(err).Msg("unable to read configuration file")
		os.Exit(1)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		log.Error().Err(err).Msg("unable to parse configuration file")
		os.Exit(1)
	}

	if err := New(cfg); err != nil {
		log.Error().Err(err).Msg("unable to initialize application")
		os.Exit(1)
	}
}

func New(cfg Config) error {
	a := Application{cfg: cfg}
	return a.init()
}

type Application struct {
	cfg        Config                 // application configuration
	fiberApp   *fiber.App             // underlying fiber application
	dbConn     *sql.DB                // underlying persistence connection, nil when postgres is disabled
	prefs      storage.Preferences    // preference store (theme flag)
	dispatcher *dispatcher.Dispatcher // conversion dispatcher
	stopC      chan os.Signal         // handle interrupt for clean up(close connections, etc)
}

func (a *Application) init() error {
	a.fiberApp = fiber.New()
	a.stopC = make(chan os.Signal, 1)
	signal.Notify(a.stopC, os.Interrupt)

	if a.cfg.DBHost != "" {
		connStr := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
			a.cfg.DBUsername,
			a.cfg.DBPassword,
			a.cfg.DBHost,
			a.cfg.DBPort,
			a.cfg.DBName,
		)
		log.Debug().Str("host", a.cfg.DBHost).Msg("initialize db connection")

		dbConn, err := sql.Open("postgres", connStr)
		if err != nil {
			log.Error().Err(err).Msg("unable to connect to db")
			return err
		}

		a.dbConn = dbConn
		a.prefs = persistence.New(dbConn)
	} else {
		log.Debug().Msg("no db configured, keeping preferences in memory")
		a.prefs = memory.New()
	}

	fiatClient, err := frankfurter.New(a.cfg.FiatAPIURL)
	if err != nil {
		log.Error().Err(err).Msg("unable to create fiat rate client")
		return err
	}

	var geckoOpts []coingecko.Option
	if a.cfg.CryptoAPIKey != "" {
		geckoOpts = append(geckoOpts, coingecko.WithAPIKey(a.cfg.CryptoAPIKey))
	}

	cryptoClient, err := coingecko.New(a.cfg.CryptoAPIURL, geckoOpts...)
	if err != nil {
		log.Error().Err(err).Msg("unable to create pricing client")
		return err
	}

	a.dispatcher = dispatcher.New(fiatClient, cryptoClient)

	a.buildRoutes()
	go a.stop()
	log.Debug().Msg("preparing fiber http server")

	if err := a.fiberApp.Listen(a.cfg.HTTPPort); err != nil {
		log.Error().Err(err).Msg("unable to start http server")
	}

	return nil
}

func (a *Application) buildRoutes() {
	a.fiberApp.Get("/swagger/*", swagger.HandlerDefault)

	conv := converter.New(a.dispatcher)
	a.fiberApp.Get("/convert", conv.Convert)
	a.fiberApp.Get("/currencies", conv.Currencies)

	prefs := preferences.New(a.prefs)
	a.fiberApp.Get("/theme", prefs.Theme)
	a.fiberApp.Put("/theme", prefs.SetTheme)
}

func (a *Application) stop() {
	<-a.stopC
	a.fiberApp.Shutdown()
	if a.dbConn != nil {
		a.dbConn.Close()
	}
	os.Exit(0)
}
