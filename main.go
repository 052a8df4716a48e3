package main

import (
	"inventory-api/auth"
	"inventory-api/config"
	"inventory-api/database"
	"inventory-api/idgen"
	"inventory-api/logger"
	"inventory-api/mailer"
	"inventory-api/migration"
	"inventory-api/routes"
	seed "inventory-api/seeder"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadConfig()
	logger.Setup(config.LogLevel, !config.IsProduction())

	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("refusing to start")
	}

	// Pastikan database ada
	if err := database.EnsureDatabaseExists(config.DBName); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare database")
	}

	db, err := database.Open(config.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate")
	}

	if config.DBSeed {
		if err := seed.RunSeeders(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	if err := idgen.Init(config.NodeID); err != nil {
		log.Fatal().Err(err).Msg("invalid APP_NODE_ID")
	}

	tokens, err := auth.NewProvider()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up token provider")
	}

	mail := mailer.New(mailer.Config{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		From:     config.MailFrom,
		ReplyTo:  config.MailReplyTo,
	})

	app := routes.NewApp(routes.Dependencies{DB: db, Tokens: tokens, Mailer: mail})

	log.Info().Str("env", config.APP_ENV).Str("port", config.APP_PORT).Msg("server starting")
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
