package repositories

import "strings"

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Page is an offset window over a timeline ordered by created_at.
type Page struct {
	Skip  int
	Limit int
	Sort  SortOrder
}

// TweetFilter selects which tweets a timeline query returns. Zero fields
// do not filter.
type TweetFilter struct {
	OwnerID    uint
	FollowedBy uint
	Keyword    string
}

// orderBy sorts on created_at; ties break on id ascending in both directions
// so that pages never overlap.
func (p Page) orderBy() []string {
	dir := "DESC"
	if p.Sort == SortAsc {
		dir = "ASC"
	}
	return []string{"tweets.created_at " + dir, "tweets.id ASC"}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere. Case folding
// happens in SQL so that both sides of the comparison fold the same way.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
