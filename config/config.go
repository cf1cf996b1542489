package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name        string `mapstructure:"name"`
		Description string `mapstructure:"description"`
		Version     string `mapstructure:"version"`
	} `mapstructure:"app"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	API struct {
		Root string `mapstructure:"root"`
	} `mapstructure:"api"`
	CORS struct {
		AllowedOrigin string `mapstructure:"allowed_origin"`
	} `mapstructure:"cors"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
		File   string `mapstructure:"file"`
	} `mapstructure:"log"`
	Store struct {
		SeedFixtures bool `mapstructure:"seed_fixtures"`
	} `mapstructure:"store"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("app.description", "Bank API")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("api.root", "/api")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("store.seed_fixtures", true)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
