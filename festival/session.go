package festival

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/Jambajuixy/Bharat-CINESFEST-V2-sub000/logging"
)

// CurrentUser returns the signed-in user. The session is held as an id into the
// known users, so this is always the same record Users returns.
func (s *Store) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.userIndex(s.currentID)
	if idx < 0 {
		return User{}, false
	}
	return s.users[idx], true
}

func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

func (s *Store) User(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.userIndex(id)
	if idx < 0 {
		return User{}, false
	}
	return s.users[idx], true
}

// ActiveUsers lists users seen within ActiveWindow of now.
func (s *Store) ActiveUsers(now time.Time) []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]User, 0)
	for _, u := range s.users {
		if u.IsActive(now) {
			active = append(active, u)
		}
	}
	return active
}

// SignIn looks the identifier up among known principals. A miss is not an error:
// it returns false and leaves the session untouched so the caller can register.
func (s *Store) SignIn(ctx context.Context, identifier string) (bool, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return false, err
	}

	principal := NormalizeIdentifier(identifier)
	if principal == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.users, func(u User) bool {
		return strings.EqualFold(u.Principal, principal)
	})
	if idx < 0 {
		logging.Log.Infof("SESSION: no account for principal %q, registration needed", principal)
		return false, nil
	}

	s.users[idx].LastActive = s.now()
	s.currentID = s.users[idx].ID
	s.writeSession(s.currentID)
	s.persist.schedule(SlotUsers)
	logging.Log.Infof("SESSION: signed in user %s", s.currentID)
	return true, nil
}

// RegisterAsync creates the account after the simulated latency and delivers the
// outcome on the returned channel, which receives exactly one value.
func (s *Store) RegisterAsync(ctx context.Context, reg Registration) <-chan RegistrationResult {
	out := make(chan RegistrationResult, 1)
	go func() {
		defer close(out)
		u, err := s.register(ctx, reg)
		out <- RegistrationResult{User: u, Err: err}
	}()
	return out
}

// Register is the blocking form of RegisterAsync.
func (s *Store) Register(ctx context.Context, reg Registration) (User, error) {
	res := <-s.RegisterAsync(ctx, reg)
	return res.User, res.Err
}

func (s *Store) register(ctx context.Context, reg Registration) (User, error) {
	principal := NormalizeIdentifier(firstNonEmpty(reg.Identifier, reg.Email, reg.Phone))
	if principal == "" {
		return User{}, ErrMissingIdentifier
	}
	if err := s.simulateLatency(ctx); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	u := User{
		ID:         s.opts.NewID(),
		Name:       strings.TrimSpace(reg.Name),
		Bio:        reg.Bio,
		Role:       reg.Role,
		Gender:     reg.Gender,
		Principal:  principal,
		AvatarURL:  reg.AvatarURL,
		LastActive: now,
		JoinedAt:   now,
	}
	if u.Role == "" {
		u.Role = RoleAudience
	}
	if u.AvatarURL == "" {
		u.AvatarURL = defaultAvatarURL(firstNonEmpty(u.Name, principal))
	}
	if slices.ContainsFunc(s.users, func(k User) bool { return strings.EqualFold(k.Principal, principal) }) {
		logging.Log.Warnf("SESSION: principal %q registered more than once", principal)
	}

	s.users = append(s.users, u)
	s.currentID = u.ID
	s.writeSession(u.ID)
	s.persist.schedule(SlotUsers)
	logging.Log.Infof("SESSION: registered user %s as %s", u.ID, u.Role)
	return u, nil
}

// Login makes u the session user without any lookup, adding it to the known users
// or replacing the record with the same id.
func (s *Store) Login(u User) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if u.ID == "" {
		u.ID = s.opts.NewID()
	}
	if u.JoinedAt.IsZero() {
		u.JoinedAt = now
	}
	u.Principal = NormalizeIdentifier(u.Principal)
	u.LastActive = now

	if idx := s.userIndex(u.ID); idx >= 0 {
		s.users[idx] = u
	} else {
		s.users = append(s.users, u)
	}
	s.currentID = u.ID
	s.writeSession(u.ID)
	s.persist.schedule(SlotUsers)
	logging.Log.Infof("SESSION: logged in user %s", u.ID)
	return u
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutLocked()
}

func (s *Store) logoutLocked() {
	if s.currentID != "" {
		logging.Log.Infof("SESSION: logged out user %s", s.currentID)
	}
	s.currentID = ""
	s.writeSession("")
}

// UpdateUser merges p into the session user and refreshes its lastActive.
func (s *Store) UpdateUser(p UserPatch) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.userIndex(s.currentID)
	if idx < 0 {
		return User{}, ErrNotSignedIn
	}
	p.Apply(&s.users[idx])
	s.users[idx].LastActive = s.now()
	s.persist.schedule(SlotUsers)
	return s.users[idx], nil
}

// AdminUpdateUser merges p into any known user. Unknown ids are ignored.
func (s *Store) AdminUpdateUser(userID string, p UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.userIndex(userID)
	if idx < 0 {
		return
	}
	p.Apply(&s.users[idx])
	s.persist.schedule(SlotUsers)
	logging.Log.Infof("SESSION: admin updated user %s", userID)
}

// DeleteUser removes the account and ends its session if it is signed in. Films
// and comments it authored are kept and keep pointing at the vanished id.
func (s *Store) DeleteUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	s.users, ok = removeByID(s.users, userID, func(u User) string { return u.ID })
	if !ok {
		return
	}
	if s.currentID == userID {
		s.logoutLocked()
	}
	s.persist.schedule(SlotUsers)
	logging.Log.Infof("SESSION: deleted user %s", userID)
}

func (s *Store) simulateLatency(ctx context.Context) error {
	if s.opts.AuthLatency <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.opts.AuthLatency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
