package api

import (
	"testing"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestReadConfig(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - defaults when nothing is set", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		conf := ReadConfig()
		assert.Equal(t, BackendMemory, conf.Backend)
		assert.Equal(t, "bharat_cinefest", conf.Namespace)
		assert.Equal(t, 8080, conf.Port)
		assert.Equal(t, 500*time.Millisecond, conf.PersistDebounce)
		assert.Equal(t, 800*time.Millisecond, conf.AuthLatency)
	})

	t.Run("Happy path - values from viper", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		viper.Set("storage.backend", BackendRedis)
		viper.Set("storage.redisAddr", "cache:6379")
		viper.Set("server.port", 9000)
		viper.Set("store.persistDebounceMs", 50)
		viper.Set("store.authLatencyMs", 0)

		conf := ReadConfig()
		assert.Equal(t, BackendRedis, conf.Backend)
		assert.Equal(t, "cache:6379", conf.RedisAddr)
		assert.Equal(t, 9000, conf.Port)
		assert.Equal(t, 50*time.Millisecond, conf.PersistDebounce)
		assert.Zero(t, conf.AuthLatency)
	})
}
