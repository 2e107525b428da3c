package festival

import (
	"testing"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompetitionRegistry(t *testing.T) {
	s := setupTestStore(t, storage.NewMemoryKeyValueStorage(0), newTestClock())
	before := len(s.Competitions())

	c := s.AddCompetition(Competition{Name: "Night Shoot", Prize: "₹10,000", EntryFee: 199, EndsAt: "2026-10-01"})
	assert.Regexp(t, `^comp_[0-9a-z]+_[0-9a-z]{4}$`, c.ID)
	require.Len(t, s.Competitions(), before+1)

	s.UpdateCompetition(c.ID, CompetitionPatch{EntryFee: ptr(0), Prize: ptr("Trophy")})
	all := s.Competitions()
	got := all[len(all)-1]
	assert.Equal(t, 0, got.EntryFee)
	assert.Equal(t, "Trophy", got.Prize)
	assert.Equal(t, "Night Shoot", got.Name)

	s.DeleteCompetition(c.ID)
	assert.Len(t, s.Competitions(), before)
	s.DeleteCompetition(c.ID)
	assert.Len(t, s.Competitions(), before)
}

func TestAdRegistry(t *testing.T) {
	s := setupTestStore(t, storage.NewMemoryKeyValueStorage(0), newTestClock())

	t.Run("Happy path - active filter follows the toggle", func(t *testing.T) {
		ad := s.AddAd(Advertisement{Title: "Contest call", TargetForm: TargetCompetition})
		assert.NotContains(t, s.ActiveAds(), ad)

		s.UpdateAd(ad.ID, AdPatch{IsActive: ptr(true)})
		ad.IsActive = true
		assert.Contains(t, s.ActiveAds(), ad)

		s.DeleteAd(ad.ID)
		assert.NotContains(t, s.Ads(), ad)
	})

	t.Run("Happy path - more than MaxActiveAds is allowed", func(t *testing.T) {
		for i := 0; i < MaxActiveAds+1; i++ {
			s.AddAd(Advertisement{Title: "extra", IsActive: true, TargetForm: TargetFestival})
		}
		assert.Greater(t, len(s.ActiveAds()), MaxActiveAds)
	})
}

func TestInterviewRegistry(t *testing.T) {
	s := setupTestStore(t, storage.NewMemoryKeyValueStorage(0), newTestClock())

	i := s.AddInterview(DirectorInterview{Name: "Sana Qureshi", FilmTitle: "Dust"})
	s.UpdateInterview(i.ID, InterviewPatch{Quote: ptr("Every frame is a decision.")})
	s.UpdateInterview("missing", InterviewPatch{Quote: ptr("ignored")})

	var found DirectorInterview
	for _, it := range s.Interviews() {
		if it.ID == i.ID {
			found = it
		}
	}
	assert.Equal(t, "Every frame is a decision.", found.Quote)
	assert.Equal(t, "Dust", found.FilmTitle)

	s.DeleteInterview(i.ID)
	for _, it := range s.Interviews() {
		assert.NotEqual(t, i.ID, it.ID)
	}
}
