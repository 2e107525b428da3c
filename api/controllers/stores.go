package controllers

import (
	"context"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
)

type SessionStore interface {
	CurrentUser() (festival.User, bool)
	SignIn(ctx context.Context, identifier string) (bool, error)
	Register(ctx context.Context, reg festival.Registration) (festival.User, error)
	Logout()
	UpdateUser(p festival.UserPatch) (festival.User, error)
}

type FilmStore interface {
	CurrentUser() (festival.User, bool)
	Films() []festival.Film
	FilmsByHall(hall festival.Hall) []festival.Film
	Film(id string) (festival.Film, bool)
	AddFilm(d festival.FilmDraft) festival.Film
	UpdateFilm(id string, p festival.FilmPatch)
	DeleteFilm(id string)
	ToggleContestStatus(id string)
	SubmitVote(filmID string, amount int) error
	AddRating(filmID string, rating int) error
	AddComment(filmID, text string) (festival.Comment, error)
	HasVoted(filmID string) bool
	UserRating(filmID string) (int, bool)
}

type UserAdminStore interface {
	CurrentUser() (festival.User, bool)
	Users() []festival.User
	User(id string) (festival.User, bool)
	AdminUpdateUser(userID string, p festival.UserPatch)
	DeleteUser(userID string)
	ActiveUsers(now time.Time) []festival.User
}

type RegistryStore interface {
	CurrentUser() (festival.User, bool)
	Competitions() []festival.Competition
	AddCompetition(c festival.Competition) festival.Competition
	UpdateCompetition(id string, p festival.CompetitionPatch)
	DeleteCompetition(id string)
	Ads() []festival.Advertisement
	ActiveAds() []festival.Advertisement
	AddAd(a festival.Advertisement) festival.Advertisement
	UpdateAd(id string, p festival.AdPatch)
	DeleteAd(id string)
	Interviews() []festival.DirectorInterview
	AddInterview(i festival.DirectorInterview) festival.DirectorInterview
	UpdateInterview(id string, p festival.InterviewPatch)
	DeleteInterview(id string)
}
