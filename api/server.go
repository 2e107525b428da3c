package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/controllers"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/transport"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/storage"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	ctx := context.Background()

	// Create storage
	kv, err := NewKeyValueStorage(ctx, s.config.StorageConfig)
	if err != nil {
		logging.Log.Errorf("failed to create storage: %v", err)
		panic("failed to create storage")
	}

	store := festival.New(ctx, kv, festival.Options{
		Namespace:       s.config.Namespace,
		PersistDebounce: s.config.PersistDebounce,
		AuthLatency:     s.config.AuthLatency,
	})

	r := NewEngine(store, gin.DebugMode)
	startLocal(r, s.config.Port, store)
}

// NewEngine builds the router with every controller registered against store.
func NewEngine(store *festival.Store, ginMode string) *gin.Engine {
	r := transport.NewRouter(ginMode)

	//Register controllers
	controllers.NewSessionController(store).RegisterRoutes(r)
	controllers.NewFilmController(store).RegisterRoutes(r)
	controllers.NewAdminController(store).RegisterRoutes(r)
	controllers.NewRegistryController(store).RegisterRoutes(r)

	return r
}

// NewKeyValueStorage picks the backend named in the storage config.
func NewKeyValueStorage(ctx context.Context, conf StorageConfig) (storage.KeyValueStorage, error) {
	switch conf.Backend {
	case BackendMemory, "":
		logging.Log.Infof("Using in-memory storage with %d byte quota", conf.QuotaBytes)
		return storage.NewMemoryKeyValueStorage(conf.QuotaBytes), nil
	case BackendDynamoDB:
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		logging.Log.Infof("Using DynamoDB storage on table %s", conf.TableName)
		return &storage.DynamoKeyValueStorage{
			Client:    dynamodb.NewFromConfig(cfg),
			TableName: conf.TableName,
		}, nil
	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach redis at %s: %w", conf.RedisAddr, err)
		}
		logging.Log.Infof("Using redis storage at %s", conf.RedisAddr)
		return &storage.RedisKeyValueStorage{Client: client}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.Backend)
	}
}

// startLocal runs the HTTP server until SIGINT/SIGTERM, then flushes pending writes.
func startLocal(engine *gin.Engine, port int, store *festival.Store) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: engine,
	}

	go func() {
		logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Log.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.Log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
	}
	store.Close()
	logging.Log.Info("Pending writes flushed")
}
