package controllers

import (
	"net/http"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/models"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/transport"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/gin-gonic/gin"
)

// RegistryController serves competitions, homepage ads and director interviews.
// Reads are public; writes need the Admin role.
type RegistryController struct {
	store RegistryStore
}

func NewRegistryController(s RegistryStore) *RegistryController {
	return &RegistryController{store: s}
}

func (c *RegistryController) RegisterRoutes(engine *gin.Engine) {
	admin := transport.AdminRoleMiddleware(c.store)

	competitions := engine.Group("/api/competitions")
	competitions.GET("", c.listCompetitions)
	competitions.POST("", admin, c.createCompetition)
	competitions.PUT("/:id", admin, c.updateCompetition)
	competitions.DELETE("/:id", admin, c.deleteCompetition)

	ads := engine.Group("/api/ads")
	ads.GET("", c.listAds)
	ads.GET("/active", c.listActiveAds)
	ads.POST("", admin, c.createAd)
	ads.PUT("/:id", admin, c.updateAd)
	ads.DELETE("/:id", admin, c.deleteAd)

	interviews := engine.Group("/api/interviews")
	interviews.GET("", c.listInterviews)
	interviews.POST("", admin, c.createInterview)
	interviews.PUT("/:id", admin, c.updateInterview)
	interviews.DELETE("/:id", admin, c.deleteInterview)
}

func (c *RegistryController) listCompetitions(g *gin.Context) {
	g.JSON(http.StatusOK, c.store.Competitions())
}

func (c *RegistryController) createCompetition(g *gin.Context) {
	var req models.CompetitionRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == nil || *req.Name == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request empty name"})
		return
	}
	g.JSON(http.StatusCreated, c.store.AddCompetition(req.ToCompetition()))
}

func (c *RegistryController) updateCompetition(g *gin.Context) {
	var req models.CompetitionRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}
	id := g.Param("id")
	c.store.UpdateCompetition(id, req.ToPatch())
	for _, comp := range c.store.Competitions() {
		if comp.ID == id {
			g.JSON(http.StatusOK, comp)
			return
		}
	}
	g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "competition not found"})
}

func (c *RegistryController) deleteCompetition(g *gin.Context) {
	c.store.DeleteCompetition(g.Param("id"))
	g.JSON(http.StatusOK, gin.H{"message": "competition deleted"})
}

func (c *RegistryController) listAds(g *gin.Context) {
	g.JSON(http.StatusOK, c.store.Ads())
}

func (c *RegistryController) listActiveAds(g *gin.Context) {
	active := c.store.ActiveAds()
	if len(active) > festival.MaxActiveAds {
		active = active[:festival.MaxActiveAds]
	}
	g.JSON(http.StatusOK, active)
}

func (c *RegistryController) createAd(g *gin.Context) {
	var req models.AdRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Title == nil || *req.Title == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request empty title"})
		return
	}
	if err := req.Validate(); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	if req.IsActive != nil && *req.IsActive && len(c.store.ActiveAds()) >= festival.MaxActiveAds {
		logging.Log.Warnf("ADMIN: creating ad %q beyond %d active ads", *req.Title, festival.MaxActiveAds)
	}
	g.JSON(http.StatusCreated, c.store.AddAd(req.ToAd()))
}

func (c *RegistryController) updateAd(g *gin.Context) {
	var req models.AdRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := req.Validate(); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	id := g.Param("id")
	c.store.UpdateAd(id, req.ToPatch())
	for _, ad := range c.store.Ads() {
		if ad.ID == id {
			g.JSON(http.StatusOK, ad)
			return
		}
	}
	g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "ad not found"})
}

func (c *RegistryController) deleteAd(g *gin.Context) {
	c.store.DeleteAd(g.Param("id"))
	g.JSON(http.StatusOK, gin.H{"message": "ad deleted"})
}

func (c *RegistryController) listInterviews(g *gin.Context) {
	g.JSON(http.StatusOK, c.store.Interviews())
}

func (c *RegistryController) createInterview(g *gin.Context) {
	var req models.InterviewRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == nil || *req.Name == "" {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request empty name"})
		return
	}
	g.JSON(http.StatusCreated, c.store.AddInterview(req.ToInterview()))
}

func (c *RegistryController) updateInterview(g *gin.Context) {
	var req models.InterviewRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request"})
		return
	}
	id := g.Param("id")
	c.store.UpdateInterview(id, req.ToPatch())
	for _, it := range c.store.Interviews() {
		if it.ID == id {
			g.JSON(http.StatusOK, it)
			return
		}
	}
	g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "interview not found"})
}

func (c *RegistryController) deleteInterview(g *gin.Context) {
	c.store.DeleteInterview(g.Param("id"))
	g.JSON(http.StatusOK, gin.H{"message": "interview deleted"})
}
