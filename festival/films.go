package festival

import (
	"math"
	"strings"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
)

func (s *Store) Films() []Film {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Film, 0, len(s.films))
	for _, f := range s.films {
		out = append(out, f.clone())
	}
	return out
}

func (s *Store) Film(id string) (Film, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.filmIndex(id)
	if idx < 0 {
		return Film{}, false
	}
	return s.films[idx].clone(), true
}

func (s *Store) FilmsByHall(hall Hall) []Film {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Film, 0)
	for _, f := range s.films {
		if f.Hall() == hall {
			out = append(out, f.clone())
		}
	}
	return out
}

// Creator resolves the film's creator. Creators are weak references and may have
// been deleted.
func (s *Store) Creator(filmID string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fi := s.filmIndex(filmID)
	if fi < 0 {
		return User{}, false
	}
	ui := s.userIndex(s.films[fi].CreatorID)
	if ui < 0 {
		return User{}, false
	}
	return s.users[ui], true
}

// AddFilm stores a new film at the head of the catalog with zeroed engagement.
// Fields are taken as given; only an empty thumbnail is derived from the video.
func (s *Store) AddFilm(d FilmDraft) Film {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := Film{
		ID:            s.opts.NewID(),
		CreatorID:     d.CreatorID,
		Title:         d.Title,
		Description:   d.Description,
		YouTubeURL:    d.YouTubeURL,
		ThumbnailURL:  d.ThumbnailURL,
		UploadDate:    s.now(),
		Category:      d.Category,
		Genre:         d.Genre,
		IsAIGenerated: d.IsAIGenerated,
		Comments:      []Comment{},
	}
	if f.ThumbnailURL == "" {
		f.ThumbnailURL = ThumbnailFor(f.YouTubeURL)
	}
	if d.IsContestActive != nil {
		v := *d.IsContestActive
		f.IsContestActive = &v
	}

	s.films = append([]Film{f}, s.films...)
	s.touchCurrentUser()
	s.persist.schedule(SlotFilms)
	logging.Log.Infof("FILM: added %s %q in %s", f.ID, f.Title, f.Category)
	return f.clone()
}

func (s *Store) UpdateFilm(id string, p FilmPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.filmIndex(id)
	if idx < 0 {
		return
	}
	p.Apply(&s.films[idx])
	s.persist.schedule(SlotFilms)
}

func (s *Store) DeleteFilm(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	s.films, ok = removeByID(s.films, id, func(f Film) string { return f.ID })
	if !ok {
		return
	}
	s.persist.schedule(SlotFilms)
	logging.Log.Infof("FILM: deleted %s", id)
}

// ToggleContestStatus flips the voting gate. A film without a gate becomes active.
func (s *Store) ToggleContestStatus(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.filmIndex(id)
	if idx < 0 {
		return
	}
	active := true
	if cur := s.films[idx].IsContestActive; cur != nil {
		active = !*cur
	}
	s.films[idx].IsContestActive = &active
	s.persist.schedule(SlotFilms)
	logging.Log.Infof("FILM: contest voting for %s active=%t", id, active)
}

func (s *Store) HasVoted(filmID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.voted[filmID]
	return ok
}

func (s *Store) VotedFilmIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.votedIDs()
}

// SubmitVote adds amount recognition points to the film, once per browser. An
// amount below one counts as a single vote.
func (s *Store) SubmitVote(filmID string, amount int) error {
	if amount < 1 {
		amount = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.filmIndex(filmID)
	if idx < 0 {
		return nil
	}
	if _, ok := s.voted[filmID]; ok {
		return ErrAlreadyVoted
	}
	if !s.films[idx].VotingOpen() {
		return ErrVotingClosed
	}

	s.films[idx].Votes += amount
	s.voted[filmID] = struct{}{}
	s.touchCurrentUser()
	s.persist.schedule(SlotFilms, SlotVotes)
	logging.Log.Debugf("FILM: %s received %d votes, total %d", filmID, amount, s.films[idx].Votes)
	return nil
}

func (s *Store) UserRating(filmID string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.ratings[filmID]
	return r, ok
}

// AddRating folds rating into the film's score, once per browser. Score and
// rating count change together.
func (s *Store) AddRating(filmID string, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.filmIndex(filmID)
	if idx < 0 {
		return nil
	}
	if _, ok := s.ratings[filmID]; ok {
		return ErrAlreadyRated
	}

	f := &s.films[idx]
	total := f.RatingTotal
	if total == 0 && f.RatingCount > 0 {
		total = f.Score * float64(f.RatingCount)
	}
	total += float64(rating)
	f.RatingCount++
	f.RatingTotal = total
	f.Score = Round1(total / float64(f.RatingCount))

	s.ratings[filmID] = rating
	s.touchCurrentUser()
	s.persist.schedule(SlotFilms, SlotRatings)
	logging.Log.Debugf("FILM: %s rated %d, score %.1f over %d", filmID, rating, f.Score, f.RatingCount)
	return nil
}

// AddComment prepends a comment by the session user. The author name is copied at
// posting time and is not updated if the user is renamed later.
func (s *Store) AddComment(filmID, text string) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ui := s.userIndex(s.currentID)
	if ui < 0 {
		return Comment{}, ErrNotSignedIn
	}
	fi := s.filmIndex(filmID)
	if fi < 0 {
		return Comment{}, nil
	}

	c := Comment{
		ID:       s.opts.NewID(),
		UserID:   s.users[ui].ID,
		UserName: s.users[ui].Name,
		Text:     strings.TrimSpace(text),
		Date:     s.now(),
	}
	s.films[fi].Comments = append([]Comment{c}, s.films[fi].Comments...)
	s.touchCurrentUser()
	s.persist.schedule(SlotFilms)
	return c, nil
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
