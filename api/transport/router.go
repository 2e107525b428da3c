package transport

import (
	"net/http"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/gin-gonic/gin"
)

// SessionReader exposes the signed-in user to middleware.
type SessionReader interface {
	CurrentUser() (festival.User, bool)
}

const sessionUserKey = "sessionUser"

func NewRouter(ginMode string) *gin.Engine {
	gin.SetMode(ginMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(CORSMiddleware())

	engine.NoRoute(NoRouteHandler())

	return engine
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			logging.Log.Infof("OPTIONS request received:%s", c.Request.URL.Path)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logging.Log.Infof("No routed request received for:%s", c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"code": "PAGE_NOT_FOUND", "message": "Page not found"})
	}
}

// SessionMiddleware rejects requests made while nobody is signed in.
func SessionMiddleware(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := sessions.CurrentUser()
		if !ok {
			logging.Log.Warnf("SESSION: anonymous request to %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			return
		}
		c.Set(sessionUserKey, u)
		c.Next()
	}
}

// AdminRoleMiddleware lets the request through when the session user carries the
// Admin role. The role flag is trusted as stored. Anonymous requests get 401.
func AdminRoleMiddleware(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := sessions.CurrentUser()
		if !ok {
			logging.Log.Warnf("ADMIN: anonymous access attempt to %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			return
		}
		if u.Role != festival.RoleAdmin {
			logging.Log.Warnf("ADMIN: Unauthorized access attempt to %s by %s", c.Request.URL.Path, u.ID)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Set(sessionUserKey, u)
		c.Next()
	}
}

// SessionUser returns the user stored by SessionMiddleware or AdminRoleMiddleware.
func SessionUser(c *gin.Context) (festival.User, bool) {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return festival.User{}, false
	}
	u, ok := v.(festival.User)
	return u, ok
}
