package api

import (
	"sync"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	StoreConfig
}

type StorageConfig struct {
	Backend       string
	Namespace     string
	TableName     string
	QuotaBytes    int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

type ServerConfig struct {
	Port     int
	LogLevel string
}

type StoreConfig struct {
	PersistDebounce time.Duration
	AuthLatency     time.Duration
}

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
)

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			Backend:       getStringOrDefault("storage.backend", BackendMemory),
			Namespace:     getStringOrDefault("storage.namespace", "bharat_cinefest"),
			TableName:     getStringOrDefault("storage.tableName", "CinefestState"),
			QuotaBytes:    getIntOrDefault("storage.quotaBytes", 5*1024*1024),
			RedisAddr:     getStringOrDefault("storage.redisAddr", "localhost:6379"),
			RedisPassword: getStringOrDefault("storage.redisPassword", ""),
			RedisDB:       getIntOrDefault("storage.redisDB", 0),
		},
		ServerConfig: ServerConfig{
			Port:     getIntOrDefault("server.port", 8080),
			LogLevel: getStringOrDefault("server.logLevel", "debug"),
		},
		StoreConfig: StoreConfig{
			PersistDebounce: time.Duration(getIntOrDefault("store.persistDebounceMs", 500)) * time.Millisecond,
			AuthLatency:     time.Duration(getIntOrDefault("store.authLatencyMs", 800)) * time.Millisecond,
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
