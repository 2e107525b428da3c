package festival

import "time"

const (
	SeedAdminID        = "admin-001"
	SeedAdminPrincipal = "admin@bharatcinefest.in"
)

func seedUsers(now time.Time) []User {
	return []User{
		{
			ID:         SeedAdminID,
			Name:       "Festival Director",
			Bio:        "Curator of the Bharat CINEFEST showcase.",
			Role:       RoleAdmin,
			Principal:  SeedAdminPrincipal,
			AvatarURL:  defaultAvatarURL("Festival Director"),
			LastActive: now,
			JoinedAt:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedFilms(now time.Time) []Film {
	return []Film{
		{
			ID:            "film-001",
			CreatorID:     SeedAdminID,
			Title:         "Monsoon Letters",
			Description:   "A postman in Kerala delivers the last handwritten letters of a vanishing village.",
			YouTubeURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			ThumbnailURL:  ThumbnailFor("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
			UploadDate:    now.Add(-72 * time.Hour),
			Category:      CategorySelection,
			Genre:         "Drama",
			IsAIGenerated: false,
			Votes:         12,
			RatingCount:   3,
			Score:         4.3,
			RatingTotal:   13,
			Comments:      []Comment{},
		},
		{
			ID:            "film-002",
			CreatorID:     SeedAdminID,
			Title:         "Synthetic Ragas",
			Description:   "A generated journey through the seasons, scored to a raga composed by a model.",
			YouTubeURL:    "https://youtu.be/9bZkp7q19f0",
			ThumbnailURL:  ThumbnailFor("https://youtu.be/9bZkp7q19f0"),
			UploadDate:    now.Add(-48 * time.Hour),
			Category:      CategoryContest,
			Genre:         "Experimental",
			IsAIGenerated: true,
			Votes:         7,
			Comments:      []Comment{},
		},
		{
			ID:            "film-003",
			CreatorID:     SeedAdminID,
			Title:         "The Last Single Screen",
			Description:   "Premiere of a documentary on Mumbai's final single-screen cinema.",
			YouTubeURL:    "https://www.youtube.com/embed/jNQXAC9IVRw",
			ThumbnailURL:  ThumbnailFor("https://www.youtube.com/embed/jNQXAC9IVRw"),
			UploadDate:    now.Add(-24 * time.Hour),
			Category:      CategoryPremiere,
			Genre:         "Documentary",
			IsAIGenerated: false,
			Comments:      []Comment{},
		},
	}
}

func seedCompetitions() []Competition {
	return []Competition{
		{
			ID:          "comp-001",
			Name:        "60 Second Shorts",
			Description: "Tell a complete story in one minute or less.",
			Prize:       "₹50,000 and a festival screening",
			EntryFee:    499,
			EndsAt:      "2026-12-31",
		},
		{
			ID:          "comp-002",
			Name:        "AI Dreamscapes",
			Description: "Films generated end to end with AI tools.",
			Prize:       "₹25,000",
			EntryFee:    299,
			EndsAt:      "2026-11-30",
		},
	}
}

func seedInterviews() []DirectorInterview {
	return []DirectorInterview{
		{
			ID:          "int-001",
			Name:        "Meera Iyer",
			PortraitURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
			Quote:       "Short films forgive nothing, which is why I love them.",
			VideoURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Expertise:   "Documentary",
			FilmTitle:   "Monsoon Letters",
		},
	}
}

func seedAds() []Advertisement {
	return []Advertisement{
		{
			ID:          "ad-001",
			Title:       "Submit to Bharat CINEFEST",
			Subtitle:    "Season submissions are open",
			Description: "Human-made and AI-generated shorts compete in separate halls.",
			ActionText:  "Submit your film",
			EntryFee:    "Free for students",
			IsActive:    true,
			ImageURL:    "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=1200",
			TargetForm:  TargetFestival,
		},
	}
}
