package models

import (
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/festival"
)

type LoginMethod string

const (
	MethodEmail            LoginMethod = "email"
	MethodPhone            LoginMethod = "phone"
	MethodInternetIdentity LoginMethod = "internet_identity"
	MethodSocial           LoginMethod = "social"
)

var ValidLoginMethods = map[LoginMethod]string{
	MethodEmail:            "email",
	MethodPhone:            "phone",
	MethodInternetIdentity: "internet_identity",
	MethodSocial:           "social",
}

type SignInRequest struct {
	Method     LoginMethod `json:"method"`
	Identifier string      `json:"identifier"`
}

// ResolveIdentifier maps the login method to the identifier the store looks up.
// Internet Identity and social logins use their fixed principals.
func (r SignInRequest) ResolveIdentifier() string {
	switch r.Method {
	case MethodInternetIdentity:
		return festival.IdentifierInternetIdentity
	case MethodSocial:
		return festival.IdentifierSocial
	}
	return r.Identifier
}

type SignInResponse struct {
	Matched           bool          `json:"matched"`
	NeedsRegistration bool          `json:"needsRegistration"`
	Identifier        string        `json:"identifier,omitempty"`
	User              *UserResponse `json:"user,omitempty"`
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Bio        string `json:"bio"`
	Role       string `json:"role"`
	Gender     string `json:"gender"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Identifier string `json:"identifier"`
	AvatarURL  string `json:"avatarUrl"`
}

func (r RegisterRequest) ToRegistration() festival.Registration {
	return festival.Registration{
		Name:       r.Name,
		Bio:        r.Bio,
		Role:       festival.Role(r.Role),
		Gender:     r.Gender,
		Email:      r.Email,
		Phone:      r.Phone,
		Identifier: r.Identifier,
		AvatarURL:  r.AvatarURL,
	}
}

type UserUpdateRequest struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
	Gender    *string `json:"gender"`
	AvatarURL *string `json:"avatarUrl"`
}

func (r UserUpdateRequest) ToPatch() festival.UserPatch {
	p := festival.UserPatch{
		Name:      r.Name,
		Bio:       r.Bio,
		Gender:    r.Gender,
		AvatarURL: r.AvatarURL,
	}
	if r.Role != nil {
		role := festival.Role(*r.Role)
		p.Role = &role
	}
	return p
}

type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Bio        string    `json:"bio"`
	Role       string    `json:"role"`
	Gender     string    `json:"gender,omitempty"`
	Principal  string    `json:"principal"`
	AvatarURL  string    `json:"avatarUrl"`
	LastActive time.Time `json:"lastActive"`
	JoinedAt   time.Time `json:"joinedAt"`
	Active     bool      `json:"active"`
}

func TransformUser(u festival.User, now time.Time) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Bio:        u.Bio,
		Role:       string(u.Role),
		Gender:     u.Gender,
		Principal:  u.Principal,
		AvatarURL:  u.AvatarURL,
		LastActive: u.LastActive,
		JoinedAt:   u.JoinedAt,
		Active:     u.IsActive(now),
	}
}
