package controllers

import (
	"net/http"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/models"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/transport"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	store UserAdminStore
}

func NewAdminController(s UserAdminStore) *AdminController {
	return &AdminController{
		store: s,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminRoleMiddleware(c.store))

	group.GET("/users", c.listUsers)
	group.GET("/users/active", c.listActiveUsers)
	group.PUT("/users/:id", c.updateUser)
	group.DELETE("/users/:id", c.deleteUser)
}

func (c *AdminController) listUsers(g *gin.Context) {
	now := time.Now()
	users := c.store.Users()
	responses := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, models.TransformUser(u, now))
	}

	logging.Log.Infof("ADMIN: listed %d users", len(responses))
	g.JSON(http.StatusOK, responses)
}

func (c *AdminController) listActiveUsers(g *gin.Context) {
	now := time.Now()
	users := c.store.ActiveUsers(now)
	responses := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, models.TransformUser(u, now))
	}
	g.JSON(http.StatusOK, responses)
}

func (c *AdminController) updateUser(g *gin.Context) {
	id := g.Param("id")
	if _, ok := c.store.User(id); !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "user not found"})
		return
	}

	var req models.UserUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Role != nil {
		if _, ok := festival.ValidRoles[festival.Role(*req.Role)]; !ok {
			logging.Log.Warnf("ADMIN: attempted to set invalid role %s on %s", *req.Role, id)
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid role"})
			return
		}
	}

	c.store.AdminUpdateUser(id, req.ToPatch())
	u, _ := c.store.User(id)
	logging.Log.Infof("ADMIN: updated user %s", id)
	g.JSON(http.StatusOK, models.TransformUser(u, time.Now()))
}

func (c *AdminController) deleteUser(g *gin.Context) {
	id := g.Param("id")
	c.store.DeleteUser(id)
	logging.Log.Infof("ADMIN: deleted user: %s", id)
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}
