package service

import (
	"errors"
	"strings"

	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/db"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/energy"
	"github.com/rajeshthapaliya/cross-platform-calorie-calc/internal/model"
)

// Session carries the selected profile and its current daily target through
// one CLI invocation. Target stays at the default until a profile is selected.
type Session struct {
	Profile *model.Profile
	Result  *energy.Result
	Target  float64
}

func NewSession(defaultTarget float64) *Session {
	return &Session{Target: defaultTarget}
}

// OpenSession selects the named profile. With no name it picks the remembered
// current profile, then the oldest one. An empty database yields a session with
// no profile.
func OpenSession(sqldb *db.DB, name string, defaultTarget float64) (*Session, error) {
	s := NewSession(defaultTarget)
	var (
		p   *model.Profile
		err error
	)
	if strings.TrimSpace(name) != "" {
		p, err = GetProfileByName(sqldb, name)
	} else {
		p, err = CurrentProfile(sqldb)
		if err == nil && p == nil {
			p, err = FirstProfile(sqldb)
		}
	}
	if err != nil {
		return nil, err
	}
	if p != nil {
		s.Select(p)
	}
	return s, nil
}

// Select makes p current and recomputes the target from it.
func (s *Session) Select(p *model.Profile) {
	s.Profile = p
	res := energy.Calculate(p.CalcInput())
	s.Result = &res
	s.Target = res.Target
}

func (s *Session) ProfileID() (int64, error) {
	if s == nil || s.Profile == nil {
		return 0, ErrNoProfile
	}
	return s.Profile.ID, nil
}

// RequireProfile is ProfileID for callers that need the whole profile.
func (s *Session) RequireProfile() (*model.Profile, error) {
	if _, err := s.ProfileID(); err != nil {
		return nil, err
	}
	return s.Profile, nil
}

// IsNoProfile reports whether err means nothing is selected.
func IsNoProfile(err error) bool {
	return errors.Is(err, ErrNoProfile)
}
