package controllers

import (
	"errors"
	"net/http"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/models"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/api/transport"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	"github.com/gin-gonic/gin"
	"github.com/matoous/go-nanoid/v2"
)

type FilmController struct {
	store FilmStore
}

func NewFilmController(s FilmStore) *FilmController {
	return &FilmController{store: s}
}

func (c *FilmController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/films")

	group.GET("", c.list)
	group.GET("/:id", c.get)
	group.POST("", transport.SessionMiddleware(c.store), c.create)
	group.POST("/:id/vote", c.vote)
	group.POST("/:id/rating", c.rate)
	group.POST("/:id/comments", transport.SessionMiddleware(c.store), c.comment)
	group.PUT("/:id", transport.AdminRoleMiddleware(c.store), c.update)
	group.DELETE("/:id", transport.AdminRoleMiddleware(c.store), c.delete)
	group.POST("/:id/contest/toggle", transport.AdminRoleMiddleware(c.store), c.toggleContest)
}

func (c *FilmController) list(g *gin.Context) {
	hall := g.Query("hall")
	if hall != "" && hall != string(festival.HallHuman) && hall != string(festival.HallAI) {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid hall"})
		return
	}
	category := g.Query("category")
	if category != "" {
		if _, ok := festival.ValidCategories[festival.Category(category)]; !ok {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: models.ErrInvalidCategory.Error()})
			return
		}
	}

	var films []festival.Film
	if hall != "" {
		films = c.store.FilmsByHall(festival.Hall(hall))
	} else {
		films = c.store.Films()
	}
	responses := make([]models.FilmResponse, 0, len(films))
	for _, f := range films {
		if category != "" && string(f.Category) != category {
			continue
		}
		responses = append(responses, c.transform(f))
	}
	g.JSON(http.StatusOK, responses)
}

func (c *FilmController) get(g *gin.Context) {
	f, ok := c.store.Film(g.Param("id"))
	if !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "film not found"})
		return
	}
	g.JSON(http.StatusOK, c.transform(f))
}

func (c *FilmController) create(g *gin.Context) {
	var req models.FilmCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if err := req.Validate(); err != nil {
		logging.Log.Warnf("FILM: rejected submission: %v", err)
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	u, _ := transport.SessionUser(g)
	f := c.store.AddFilm(req.ToDraft(u.ID))
	g.JSON(http.StatusCreated, models.FilmCreateResponse{
		Film:             f,
		RegistrationHash: c.generateRegistrationHash(),
	})
}

func (c *FilmController) update(g *gin.Context) {
	id := g.Param("id")
	if _, ok := c.store.Film(id); !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "film not found"})
		return
	}

	var req models.FilmUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if err := req.Validate(); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.store.UpdateFilm(id, req.ToPatch())
	f, _ := c.store.Film(id)
	g.JSON(http.StatusOK, c.transform(f))
}

func (c *FilmController) delete(g *gin.Context) {
	id := g.Param("id")
	c.store.DeleteFilm(id)
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (c *FilmController) toggleContest(g *gin.Context) {
	id := g.Param("id")
	if _, ok := c.store.Film(id); !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "film not found"})
		return
	}
	c.store.ToggleContestStatus(id)
	f, _ := c.store.Film(id)
	g.JSON(http.StatusOK, c.transform(f))
}

func (c *FilmController) vote(g *gin.Context) {
	id := g.Param("id")
	if _, ok := c.store.Film(id); !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "film not found"})
		return
	}

	var req models.VoteRequest
	if g.Request.ContentLength > 0 {
		if err := g.ShouldBindJSON(&req); err != nil {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request format"})
			return
		}
	}

	if err := c.store.SubmitVote(id, req.Amount); err != nil {
		if errors.Is(err, festival.ErrAlreadyVoted) || errors.Is(err, festival.ErrVotingClosed) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
			return
		}
		logging.Log.Errorf("FILM: vote on %s failed: %v", id, err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not register vote"})
		return
	}
	f, _ := c.store.Film(id)
	g.JSON(http.StatusOK, c.transform(f))
}

func (c *FilmController) rate(g *gin.Context) {
	id := g.Param("id")
	if _, ok := c.store.Film(id); !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "film not found"})
		return
	}

	var req models.RatingRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "rating must be between 1 and 5"})
		return
	}

	if err := c.store.AddRating(id, req.Rating); err != nil {
		switch {
		case errors.Is(err, festival.ErrAlreadyRated):
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
		case errors.Is(err, festival.ErrInvalidRating):
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		default:
			logging.Log.Errorf("FILM: rating on %s failed: %v", id, err)
			g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "could not register rating"})
		}
		return
	}
	f, _ := c.store.Film(id)
	g.JSON(http.StatusOK, c.transform(f))
}

func (c *FilmController) comment(g *gin.Context) {
	id := g.Param("id")
	if _, ok := c.store.Film(id); !ok {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "film not found"})
		return
	}

	var req models.CommentRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "text is required"})
		return
	}

	comment, err := c.store.AddComment(id, req.Text)
	if err != nil {
		g.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}
	g.JSON(http.StatusCreated, comment)
}

func (c *FilmController) transform(f festival.Film) models.FilmResponse {
	rating, rated := c.store.UserRating(f.ID)
	return models.TransformFilm(f, c.store.HasVoted(f.ID), rating, rated)
}

func (c *FilmController) generateRegistrationHash() string {
	code, err := gonanoid.Generate(models.Alphabet, models.RegistrationHashLength)
	if err != nil {
		logging.Log.Errorf("FILM: failed to generate registration hash: %v", err)
		return "ERROR"
	}
	return "BCF-" + code
}
