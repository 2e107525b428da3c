package models

import (
	"errors"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
)

var ErrInvalidTargetForm = errors.New("invalid target form")

type CompetitionRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Prize       *string `json:"prize"`
	EntryFee    *int    `json:"entryFee"`
	EndsAt      *string `json:"endsAt"`
}

func (r CompetitionRequest) ToCompetition() festival.Competition {
	var c festival.Competition
	r.ToPatch().Apply(&c)
	return c
}

func (r CompetitionRequest) ToPatch() festival.CompetitionPatch {
	return festival.CompetitionPatch{
		Name:        r.Name,
		Description: r.Description,
		Prize:       r.Prize,
		EntryFee:    r.EntryFee,
		EndsAt:      r.EndsAt,
	}
}

type AdRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	ActionText  *string `json:"actionText"`
	Prize       *string `json:"prize"`
	EntryFee    *string `json:"entryFee"`
	IsActive    *bool   `json:"isActive"`
	ImageURL    *string `json:"imageUrl"`
	VideoURL    *string `json:"videoUrl"`
	TargetForm  *string `json:"targetForm"`
}

func (r AdRequest) Validate() error {
	if r.TargetForm != nil {
		if _, ok := festival.ValidTargetForms[festival.TargetForm(*r.TargetForm)]; !ok {
			return ErrInvalidTargetForm
		}
	}
	return nil
}

func (r AdRequest) ToAd() festival.Advertisement {
	a := festival.Advertisement{TargetForm: festival.TargetFestival}
	r.ToPatch().Apply(&a)
	return a
}

func (r AdRequest) ToPatch() festival.AdPatch {
	p := festival.AdPatch{
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Description: r.Description,
		ActionText:  r.ActionText,
		Prize:       r.Prize,
		EntryFee:    r.EntryFee,
		IsActive:    r.IsActive,
		ImageURL:    r.ImageURL,
		VideoURL:    r.VideoURL,
	}
	if r.TargetForm != nil {
		tf := festival.TargetForm(*r.TargetForm)
		p.TargetForm = &tf
	}
	return p
}

type InterviewRequest struct {
	Name        *string `json:"name"`
	PortraitURL *string `json:"portraitUrl"`
	Quote       *string `json:"quote"`
	VideoURL    *string `json:"videoUrl"`
	Expertise   *string `json:"expertise"`
	FilmTitle   *string `json:"filmTitle"`
}

func (r InterviewRequest) ToInterview() festival.DirectorInterview {
	var i festival.DirectorInterview
	r.ToPatch().Apply(&i)
	return i
}

func (r InterviewRequest) ToPatch() festival.InterviewPatch {
	return festival.InterviewPatch{
		Name:        r.Name,
		PortraitURL: r.PortraitURL,
		Quote:       r.Quote,
		VideoURL:    r.VideoURL,
		Expertise:   r.Expertise,
		FilmTitle:   r.FilmTitle,
	}
}
