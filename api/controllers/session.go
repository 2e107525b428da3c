package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/models"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/gin-gonic/gin"
)

type SessionController struct {
	store SessionStore
}

func NewSessionController(s SessionStore) *SessionController {
	return &SessionController{store: s}
}

func (c *SessionController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/session")

	group.POST("/signin", c.signIn)
	group.POST("/register", c.register)
	group.POST("/logout", c.logout)
	group.GET("/me", c.me)
	group.PUT("/me", c.updateMe)
}

func (c *SessionController) signIn(g *gin.Context) {
	var req models.SignInRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Method == "" {
		req.Method = models.MethodEmail
	}
	if _, ok := models.ValidLoginMethods[req.Method]; !ok {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid login method"})
		return
	}

	identifier := req.ResolveIdentifier()
	if strings.TrimSpace(identifier) == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "identifier is required"})
		return
	}

	matched, err := c.store.SignIn(g.Request.Context(), identifier)
	if err != nil {
		logging.Log.Errorf("SESSION: sign-in aborted: %v", err)
		g.JSON(http.StatusRequestTimeout, models.ErrorResponse{Error: "sign-in aborted"})
		return
	}
	if !matched {
		g.JSON(http.StatusOK, models.SignInResponse{
			NeedsRegistration: true,
			Identifier:        festival.NormalizeIdentifier(identifier),
		})
		return
	}

	u, _ := c.store.CurrentUser()
	resp := models.TransformUser(u, time.Now())
	g.JSON(http.StatusOK, models.SignInResponse{Matched: true, User: &resp})
}

func (c *SessionController) register(g *gin.Context) {
	var req models.RegisterRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request, name is required"})
		return
	}
	if req.Role == "" {
		req.Role = string(festival.RoleAudience)
	}
	if _, ok := festival.ValidRoles[festival.Role(req.Role)]; !ok {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid role"})
		return
	}

	u, err := c.store.Register(g.Request.Context(), req.ToRegistration())
	if err != nil {
		if errors.Is(err, festival.ErrMissingIdentifier) {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		logging.Log.Errorf("SESSION: registration aborted: %v", err)
		g.JSON(http.StatusRequestTimeout, models.ErrorResponse{Error: "registration aborted"})
		return
	}
	g.JSON(http.StatusCreated, models.TransformUser(u, time.Now()))
}

func (c *SessionController) logout(g *gin.Context) {
	c.store.Logout()
	g.JSON(http.StatusOK, models.MessageResponse{Message: "signed out"})
}

func (c *SessionController) me(g *gin.Context) {
	u, ok := c.store.CurrentUser()
	if !ok {
		g.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "not signed in"})
		return
	}
	g.JSON(http.StatusOK, models.TransformUser(u, time.Now()))
}

func (c *SessionController) updateMe(g *gin.Context) {
	var req models.UserUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Role != nil {
		if _, ok := festival.ValidRoles[festival.Role(*req.Role)]; !ok {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid role"})
			return
		}
	}

	u, err := c.store.UpdateUser(req.ToPatch())
	if err != nil {
		g.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "not signed in"})
		return
	}
	g.JSON(http.StatusOK, models.TransformUser(u, time.Now()))
}
