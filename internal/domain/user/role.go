package user

import (
	"errors"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

type Role string

const (
	RoleSeeker    Role = "seeker"
	RoleRecruiter Role = "recruiter"
)

// ParseRole normalises the role strings accepted at the boundary. "jobseeker"
// is a historical synonym of "seeker".
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "seeker", "jobseeker", "job_seeker":
		return RoleSeeker, nil
	case "recruiter":
		return RoleRecruiter, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) Valid() bool {
	return r == RoleSeeker || r == RoleRecruiter
}

func (r Role) String() string {
	return string(r)
}
