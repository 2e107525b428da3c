package models

import (
	"errors"
	"strings"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
)

var (
	ErrInvalidYouTubeURL = errors.New("a valid YouTube link is required")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrMissingTitle      = errors.New("title is required")
)

type FilmCreateRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	YouTubeURL      string `json:"youtubeUrl"`
	ThumbnailURL    string `json:"thumbnailUrl"`
	Category        string `json:"category"`
	Genre           string `json:"genre"`
	IsAIGenerated   bool   `json:"isAiGenerated"`
	IsContestActive *bool  `json:"isContestActive"`
}

// Validate applies the submission form rules before the film reaches the store.
func (r FilmCreateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}
	if _, ok := festival.YouTubeVideoID(strings.TrimSpace(r.YouTubeURL)); !ok {
		return ErrInvalidYouTubeURL
	}
	if _, ok := festival.ValidCategories[festival.Category(r.Category)]; !ok {
		return ErrInvalidCategory
	}
	return nil
}

func (r FilmCreateRequest) ToDraft(creatorID string) festival.FilmDraft {
	return festival.FilmDraft{
		CreatorID:       creatorID,
		Title:           strings.TrimSpace(r.Title),
		Description:     r.Description,
		YouTubeURL:      strings.TrimSpace(r.YouTubeURL),
		ThumbnailURL:    r.ThumbnailURL,
		Category:        festival.Category(r.Category),
		Genre:           r.Genre,
		IsAIGenerated:   r.IsAIGenerated,
		IsContestActive: r.IsContestActive,
	}
}

type FilmUpdateRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	YouTubeURL      *string `json:"youtubeUrl"`
	ThumbnailURL    *string `json:"thumbnailUrl"`
	Category        *string `json:"category"`
	Genre           *string `json:"genre"`
	IsAIGenerated   *bool   `json:"isAiGenerated"`
	IsContestActive *bool   `json:"isContestActive"`
}

func (r FilmUpdateRequest) Validate() error {
	if r.YouTubeURL != nil {
		if _, ok := festival.YouTubeVideoID(*r.YouTubeURL); !ok {
			return ErrInvalidYouTubeURL
		}
	}
	if r.Category != nil {
		if _, ok := festival.ValidCategories[festival.Category(*r.Category)]; !ok {
			return ErrInvalidCategory
		}
	}
	return nil
}

func (r FilmUpdateRequest) ToPatch() festival.FilmPatch {
	p := festival.FilmPatch{
		Title:           r.Title,
		Description:     r.Description,
		YouTubeURL:      r.YouTubeURL,
		ThumbnailURL:    r.ThumbnailURL,
		Genre:           r.Genre,
		IsAIGenerated:   r.IsAIGenerated,
		IsContestActive: r.IsContestActive,
	}
	if r.Category != nil {
		c := festival.Category(*r.Category)
		p.Category = &c
	}
	return p
}

type FilmCreateResponse struct {
	Film             festival.Film `json:"film"`
	RegistrationHash string        `json:"registrationHash"`
}

type VoteRequest struct {
	Amount int `json:"amount"`
}

type RatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// FilmResponse decorates a film with this browser's reaction state.
type FilmResponse struct {
	festival.Film
	Hall       string `json:"hall"`
	HasVoted   bool   `json:"hasVoted"`
	UserRating *int   `json:"userRating,omitempty"`
}

func TransformFilm(f festival.Film, hasVoted bool, rating int, rated bool) FilmResponse {
	r := FilmResponse{
		Film:     f,
		Hall:     string(f.Hall()),
		HasVoted: hasVoted,
	}
	if rated {
		r.UserRating = &rating
	}
	return r
}
