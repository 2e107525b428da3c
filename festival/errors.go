package festival

import "errors"

var (
	ErrNotSignedIn       = errors.New("no user is signed in")
	ErrMissingIdentifier = errors.New("registration requires an identifier, email or phone")
	ErrAlreadyVoted      = errors.New("film already voted on from this browser")
	ErrAlreadyRated      = errors.New("film already rated from this browser")
	ErrVotingClosed      = errors.New("voting is closed for this film")
	ErrInvalidRating     = errors.New("rating out of range")
)
