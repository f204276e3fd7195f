package igdb

import (
	"fmt"
	"strconv"
	"strings"
)

// gameFields is the projection shared by every game query.
const gameFields = "fields name, summary, storyline, first_release_date, rating, cover.url, platforms.name, genres.name, videos.video_id, screenshots.url, artworks.url;"

// platformFields is the projection for platform listings.
const platformFields = "fields name, generation, category;"

// searchLimit caps name searches.
const searchLimit = 20

// Query assembles an upstream query string. The upstream parser is
// positional, so String always emits clauses in the order it accepts:
// fields, search, limit/offset, where, sort. A clause is omitted when its
// source value was never set.
type Query struct {
	fields    string
	search    string
	where     string
	sort      string
	limit     int
	offset    int
	hasLimit  bool
	hasOffset bool
}

func NewQuery(fields string) *Query {
	return &Query{fields: fields}
}

// Search sets a full-text search clause. Search and Where are mutually
// exclusive call paths; no caller combines them.
func (q *Query) Search(name string) *Query {
	q.search = strings.ReplaceAll(name, `"`, `\"`)
	return q
}

func (q *Query) Where(cond string) *Query {
	q.where = cond
	return q
}

func (q *Query) Sort(expr string) *Query {
	q.sort = expr
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	q.hasLimit = true
	return q
}

// Page sets both limit and offset.
func (q *Query) Page(limit, offset int) *Query {
	q.Limit(limit)
	q.offset = offset
	q.hasOffset = true
	return q
}

func (q *Query) String() string {
	var b strings.Builder
	b.WriteString(q.fields)
	if q.search != "" {
		fmt.Fprintf(&b, ` search "%s";`, q.search)
	}
	if q.hasLimit {
		b.WriteString(" limit " + strconv.Itoa(q.limit) + ";")
	}
	if q.hasOffset {
		b.WriteString(" offset " + strconv.Itoa(q.offset) + ";")
	}
	if q.where != "" {
		b.WriteString(" where " + q.where + ";")
	}
	if q.sort != "" {
		b.WriteString(" sort " + q.sort + ";")
	}
	return b.String()
}

// idList renders ids as the upstream set literal, e.g. "(1,2,3)".
func idList(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
