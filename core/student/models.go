package student

import (
	"strings"

	"github.com/trezcool/gradebook/core"
)

// Student is a member of the fixed roster. Students are never created,
// edited or deleted through the services.
type Student struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	RegisteredAt core.Date `json:"registered_at"`
}

func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

type QueryFilter struct {
	Search string `query:"search"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// Matches does a case-insensitive match of Search on the full name or email.
func (qf QueryFilter) Matches(s Student) bool {
	if qf.Search == "" {
		return true
	}
	search := strings.ToLower(qf.Search)
	return strings.Contains(strings.ToLower(s.FullName()), search) ||
		strings.Contains(strings.ToLower(s.Email), search)
}
