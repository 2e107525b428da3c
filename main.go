package main

import (
	"strings"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	logging.BoostrapLogger()

	if err := godotenv.Load(); err != nil {
		logging.Log.Debugf("No .env file loaded: %v", err)
	}

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()
	logging.SetLevel(config.LogLevel)

	service := api.NewServer(config)
	service.Start()
}
