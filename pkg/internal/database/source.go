package database

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var C *gorm.DB

func NewGorm() error {
	var err error
	dsn := viper.GetString("database.dsn")

	C, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: viper.GetString("database.prefix"),
		},
		Logger: logger.New(&log.Logger, logger.Config{
			Colorful: true,
			LogLevel: logger.Warn,
		}),
	})

	return err
}
