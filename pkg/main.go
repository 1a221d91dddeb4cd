package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "github.com/quillapp/quill-server/pkg/internal"
	"github.com/quillapp/quill-server/pkg/internal/cache"
	"github.com/quillapp/quill-server/pkg/internal/database"
	"github.com/quillapp/quill-server/pkg/internal/http"
	"github.com/quillapp/quill-server/pkg/internal/security"
	"github.com/quillapp/quill-server/pkg/internal/services"
	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString("  ___        _ _ _\n / _ \\ _   _(_) | |\n| | | | | | | | | |\n| |_| | |_| | | | |\n \\__\\_\\\\__,_|_|_|_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Quill"), pkg.AppVersion)
	fmt.Printf("The personal feed & blogging service\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Prepare the cache, cleared at startup by construction
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when creating cache store.")
	}

	// Load the auth subsystem's token verification key
	if reader, err := security.NewTokenReader(viper.GetString("security.auth_public_key")); err != nil {
		log.Error().Err(err).Msg("An error occurred when reading auth public key. Authentication related features will be disabled.")
	} else {
		http.IReader = reader
		log.Info().Msg("Auth public key loaded.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
