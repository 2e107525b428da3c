package festival

import (
	"slices"
	"time"
)

type Role string

const (
	RoleCreator  Role = "Creator"
	RoleJudge    Role = "Judge"
	RoleAudience Role = "Audience"
	RoleAdmin    Role = "Admin"
)

var ValidRoles = map[Role]string{
	RoleCreator:  "Creator",
	RoleJudge:    "Judge",
	RoleAudience: "Audience",
	RoleAdmin:    "Admin",
}

type Category string

const (
	CategorySelection Category = "Selection"
	CategoryPremiere  Category = "Premiere"
	CategoryContest   Category = "Contest"
)

var ValidCategories = map[Category]string{
	CategorySelection: "Selection",
	CategoryPremiere:  "Premiere",
	CategoryContest:   "Contest",
}

// TargetForm names the submission form an advertisement opens.
type TargetForm string

const (
	TargetFestival    TargetForm = "festival"
	TargetCompetition TargetForm = "competition"
	TargetPremiere    TargetForm = "premiere"
)

var ValidTargetForms = map[TargetForm]string{
	TargetFestival:    "festival",
	TargetCompetition: "competition",
	TargetPremiere:    "premiere",
}

// Hall partitions films for display. It is derived from Film.IsAIGenerated.
type Hall string

const (
	HallHuman Hall = "human"
	HallAI    Hall = "ai"
)

const (
	// ActiveWindow is how recently a user must have interacted to show as active.
	ActiveWindow = 10 * time.Minute
	// MaxActiveAds is the number of active ads the homepage can display.
	MaxActiveAds = 3
	MinRating    = 1
	MaxRating    = 5
)

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Bio        string    `json:"bio"`
	Role       Role      `json:"role"`
	Gender     string    `json:"gender,omitempty"`
	Principal  string    `json:"principal"`
	AvatarURL  string    `json:"avatarUrl"`
	LastActive time.Time `json:"lastActive"`
	JoinedAt   time.Time `json:"joinedAt"`
}

func (u User) IsActive(now time.Time) bool {
	return now.Sub(u.LastActive) < ActiveWindow
}

type Comment struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
}

type Film struct {
	ID              string    `json:"id"`
	CreatorID       string    `json:"creatorId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	YouTubeURL      string    `json:"youtubeUrl"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	UploadDate      time.Time `json:"uploadDate"`
	Category        Category  `json:"category"`
	Genre           string    `json:"genre"`
	IsAIGenerated   bool      `json:"isAiGenerated"`
	Votes           int       `json:"votes"`
	RatingCount     int       `json:"ratingCount"`
	Score           float64   `json:"score"`
	RatingTotal     float64   `json:"ratingTotal,omitempty"`
	IsContestActive *bool     `json:"isContestActive,omitempty"`
	Comments        []Comment `json:"comments"`
}

func (f Film) Hall() Hall {
	if f.IsAIGenerated {
		return HallAI
	}
	return HallHuman
}

// VotingOpen reports whether the contest gate allows votes. A film without a gate
// is always open.
func (f Film) VotingOpen() bool {
	return f.IsContestActive == nil || *f.IsContestActive
}

func (f Film) clone() Film {
	out := f
	out.Comments = slices.Clone(f.Comments)
	if out.Comments == nil {
		out.Comments = []Comment{}
	}
	if f.IsContestActive != nil {
		v := *f.IsContestActive
		out.IsContestActive = &v
	}
	return out
}

type Competition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Prize       string `json:"prize"`
	EntryFee    int    `json:"entryFee"`
	EndsAt      string `json:"endsAt"`
}

type Advertisement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Description string     `json:"description"`
	ActionText  string     `json:"actionText"`
	Prize       string     `json:"prize,omitempty"`
	EntryFee    string     `json:"entryFee,omitempty"`
	IsActive    bool       `json:"isActive"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	VideoURL    string     `json:"videoUrl,omitempty"`
	TargetForm  TargetForm `json:"targetForm"`
}

type DirectorInterview struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PortraitURL string `json:"portraitUrl"`
	Quote       string `json:"quote"`
	VideoURL    string `json:"videoUrl"`
	Expertise   string `json:"expertise"`
	FilmTitle   string `json:"filmTitle"`
}

// Registration is the profile submitted when a sign-in found no account.
type Registration struct {
	Name       string
	Bio        string
	Role       Role
	Gender     string
	Email      string
	Phone      string
	Identifier string
	AvatarURL  string
}

type RegistrationResult struct {
	User User
	Err  error
}

// FilmDraft carries the caller-supplied fields of a new film.
type FilmDraft struct {
	CreatorID       string
	Title           string
	Description     string
	YouTubeURL      string
	ThumbnailURL    string
	Category        Category
	Genre           string
	IsAIGenerated   bool
	IsContestActive *bool
}

type UserPatch struct {
	Name      *string
	Bio       *string
	Role      *Role
	Gender    *string
	AvatarURL *string
}

func (p UserPatch) Apply(u *User) {
	setIf(&u.Name, p.Name)
	setIf(&u.Bio, p.Bio)
	setIf(&u.Role, p.Role)
	setIf(&u.Gender, p.Gender)
	setIf(&u.AvatarURL, p.AvatarURL)
}

type FilmPatch struct {
	Title           *string
	Description     *string
	YouTubeURL      *string
	ThumbnailURL    *string
	Category        *Category
	Genre           *string
	IsAIGenerated   *bool
	IsContestActive *bool
}

func (p FilmPatch) Apply(f *Film) {
	setIf(&f.Title, p.Title)
	setIf(&f.Description, p.Description)
	setIf(&f.YouTubeURL, p.YouTubeURL)
	setIf(&f.ThumbnailURL, p.ThumbnailURL)
	setIf(&f.Category, p.Category)
	setIf(&f.Genre, p.Genre)
	setIf(&f.IsAIGenerated, p.IsAIGenerated)
	if p.IsContestActive != nil {
		v := *p.IsContestActive
		f.IsContestActive = &v
	}
}

type CompetitionPatch struct {
	Name        *string
	Description *string
	Prize       *string
	EntryFee    *int
	EndsAt      *string
}

func (p CompetitionPatch) Apply(c *Competition) {
	setIf(&c.Name, p.Name)
	setIf(&c.Description, p.Description)
	setIf(&c.Prize, p.Prize)
	setIf(&c.EntryFee, p.EntryFee)
	setIf(&c.EndsAt, p.EndsAt)
}

type AdPatch struct {
	Title       *string
	Subtitle    *string
	Description *string
	ActionText  *string
	Prize       *string
	EntryFee    *string
	IsActive    *bool
	ImageURL    *string
	VideoURL    *string
	TargetForm  *TargetForm
}

func (p AdPatch) Apply(a *Advertisement) {
	setIf(&a.Title, p.Title)
	setIf(&a.Subtitle, p.Subtitle)
	setIf(&a.Description, p.Description)
	setIf(&a.ActionText, p.ActionText)
	setIf(&a.Prize, p.Prize)
	setIf(&a.EntryFee, p.EntryFee)
	setIf(&a.IsActive, p.IsActive)
	setIf(&a.ImageURL, p.ImageURL)
	setIf(&a.VideoURL, p.VideoURL)
	setIf(&a.TargetForm, p.TargetForm)
}

type InterviewPatch struct {
	Name        *string
	PortraitURL *string
	Quote       *string
	VideoURL    *string
	Expertise   *string
	FilmTitle   *string
}

func (p InterviewPatch) Apply(i *DirectorInterview) {
	setIf(&i.Name, p.Name)
	setIf(&i.PortraitURL, p.PortraitURL)
	setIf(&i.Quote, p.Quote)
	setIf(&i.VideoURL, p.VideoURL)
	setIf(&i.Expertise, p.Expertise)
	setIf(&i.FilmTitle, p.FilmTitle)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
