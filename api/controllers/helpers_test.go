package controllers

import (
	"context"
	"net/http"
	"testing"
	"time"

	testutils "github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/controllers/testing"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/models"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/transport"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// setupTestRouter wires every controller against a fresh store over in-memory storage.
func setupTestRouter(t *testing.T) (*festival.Store, *gin.Engine) {
	t.Helper()
	logging.Log = logrus.New()
	logging.Log.SetLevel(logrus.WarnLevel)

	kv := storage.NewMemoryKeyValueStorage(0)
	store := festival.New(context.Background(), kv, festival.Options{
		PersistDebounce: time.Hour,
	})
	t.Cleanup(store.Close)

	r := transport.NewRouter(gin.TestMode)
	NewSessionController(store).RegisterRoutes(r)
	NewFilmController(store).RegisterRoutes(r)
	NewAdminController(store).RegisterRoutes(r)
	NewRegistryController(store).RegisterRoutes(r)

	return store, r
}

func signInAsAdmin(t *testing.T, router *gin.Engine) {
	t.Helper()
	res := testutils.PerformRequest(router, http.MethodPost, "/api/session/signin", models.SignInRequest{
		Method:     models.MethodEmail,
		Identifier: festival.SeedAdminPrincipal,
	}, nil)
	require.Equal(t, http.StatusOK, res.Code)
}

func registerAudience(t *testing.T, router *gin.Engine, email string) models.UserResponse {
	t.Helper()
	res := testutils.PerformRequest(router, http.MethodPost, "/api/session/register", models.RegisterRequest{
		Name:  "Meera",
		Email: email,
	}, nil)
	require.Equal(t, http.StatusCreated, res.Code)

	u, err := testutils.DecodeBody[models.UserResponse](res)
	require.NoError(t, err)
	return u
}
