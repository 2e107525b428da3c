package festival

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idTokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// timeToken builds the time-based id used by registry entries.
func (s *Store) timeToken(prefix string) string {
	suffix, err := gonanoid.Generate(idTokenAlphabet, 4)
	if err != nil {
		logging.Log.Errorf("STORE: failed to generate id suffix: %v", err)
		suffix = "0000"
	}
	return fmt.Sprintf("%s_%s_%s", prefix, strconv.FormatInt(s.now().UnixMilli(), 36), suffix)
}

func (s *Store) Competitions() []Competition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.competitions)
}

func (s *Store) AddCompetition(c Competition) Competition {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.timeToken("comp")
	s.competitions = append(s.competitions, c)
	s.persist.schedule(SlotCompetitions)
	logging.Log.Infof("STORE: added competition %s %q", c.ID, c.Name)
	return c
}

func (s *Store) UpdateCompetition(id string, p CompetitionPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexByID(s.competitions, id, competitionID)
	if idx < 0 {
		return
	}
	p.Apply(&s.competitions[idx])
	s.persist.schedule(SlotCompetitions)
}

func (s *Store) DeleteCompetition(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.competitions, ok = removeByID(s.competitions, id, competitionID); ok {
		s.persist.schedule(SlotCompetitions)
		logging.Log.Infof("STORE: deleted competition %s", id)
	}
}

func (s *Store) Ads() []Advertisement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ads)
}

// ActiveAds returns the ads eligible for display. The store does not cap them at
// MaxActiveAds; that limit is applied where ads are shown.
func (s *Store) ActiveAds() []Advertisement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Advertisement, 0, MaxActiveAds)
	for _, a := range s.ads {
		if a.IsActive {
			active = append(active, a)
		}
	}
	return active
}

func (s *Store) AddAd(a Advertisement) Advertisement {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.timeToken("ad")
	s.ads = append(s.ads, a)
	s.persist.schedule(SlotAds)
	logging.Log.Infof("STORE: added ad %s %q active=%t", a.ID, a.Title, a.IsActive)
	return a
}

func (s *Store) UpdateAd(id string, p AdPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexByID(s.ads, id, adID)
	if idx < 0 {
		return
	}
	p.Apply(&s.ads[idx])
	s.persist.schedule(SlotAds)
}

func (s *Store) DeleteAd(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.ads, ok = removeByID(s.ads, id, adID); ok {
		s.persist.schedule(SlotAds)
		logging.Log.Infof("STORE: deleted ad %s", id)
	}
}

func (s *Store) Interviews() []DirectorInterview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.interviews)
}

func (s *Store) AddInterview(i DirectorInterview) DirectorInterview {
	s.mu.Lock()
	defer s.mu.Unlock()

	i.ID = s.timeToken("int")
	s.interviews = append(s.interviews, i)
	s.persist.schedule(SlotInterviews)
	logging.Log.Infof("STORE: added interview %s with %q", i.ID, i.Name)
	return i
}

func (s *Store) UpdateInterview(id string, p InterviewPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexByID(s.interviews, id, interviewID)
	if idx < 0 {
		return
	}
	p.Apply(&s.interviews[idx])
	s.persist.schedule(SlotInterviews)
}

func (s *Store) DeleteInterview(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.interviews, ok = removeByID(s.interviews, id, interviewID); ok {
		s.persist.schedule(SlotInterviews)
		logging.Log.Infof("STORE: deleted interview %s", id)
	}
}

func competitionID(c Competition) string     { return c.ID }
func adID(a Advertisement) string            { return a.ID }
func interviewID(i DirectorInterview) string { return i.ID }
