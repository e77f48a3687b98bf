package babel

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query filters recognised by the annotations endpoint. Other keys are sent
// as given; Babel decides what they mean.
const (
	QueryHasTargetURI = "hasTarget.uri"
	QueryAnnotatedBy  = "annotatedBy"
	QueryHasBodyURI   = "hasBody.uri"
	QueryHasBodyType  = "hasBody.type"
	QueryText         = "q"
	QueryLimit        = "limit"
	QueryOffset       = "offset"
)

// Query is the query string of a GetAnnotations call.
type Query map[string]string

// Encode returns the URL encoding of q sorted by key, or "" when q is empty.
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	v := make(url.Values, len(q))
	for k, val := range q {
		v.Set(k, val)
	}
	return v.Encode()
}

// AnnotationQuery builds a Query from the recognised filters.
type AnnotationQuery struct {
	q Query
}

// NewAnnotationQuery returns an empty AnnotationQuery.
func NewAnnotationQuery() *AnnotationQuery {
	return &AnnotationQuery{q: Query{}}
}

func (a *AnnotationQuery) set(k, v string) *AnnotationQuery {
	if v != "" {
		a.q[k] = v
	}
	return a
}

// HasTargetURI restricts results to a specific target.
func (a *AnnotationQuery) HasTargetURI(uri string) *AnnotationQuery {
	return a.set(QueryHasTargetURI, uri)
}

// AnnotatedBy restricts results to annotations made by a user.
func (a *AnnotationQuery) AnnotatedBy(user string) *AnnotationQuery {
	return a.set(QueryAnnotatedBy, user)
}

// HasBodyURI restricts results to a specific body uri.
func (a *AnnotationQuery) HasBodyURI(uri string) *AnnotationQuery {
	return a.set(QueryHasBodyURI, uri)
}

// HasBodyType restricts results to a body type.
func (a *AnnotationQuery) HasBodyType(t string) *AnnotationQuery {
	return a.set(QueryHasBodyType, t)
}

// Text performs a text search on hasBody.chars. Babel ignores annotatedBy and
// hasTarget when it is set.
func (a *AnnotationQuery) Text(q string) *AnnotationQuery {
	return a.set(QueryText, q)
}

// Limit caps the number of results. Zero leaves the service default.
func (a *AnnotationQuery) Limit(n int) *AnnotationQuery {
	if n > 0 {
		a.q[QueryLimit] = strconv.Itoa(n)
	}
	return a
}

// Offset skips the first n results.
func (a *AnnotationQuery) Offset(n int) *AnnotationQuery {
	if n > 0 {
		a.q[QueryOffset] = strconv.Itoa(n)
	}
	return a
}

// Query returns a copy of the built query.
func (a *AnnotationQuery) Query() Query {
	q := make(Query, len(a.q))
	for k, v := range a.q {
		q[k] = v
	}
	return q
}

// FeedIDs is an ordered list of feed identifiers. Elements may be strings,
// other scalars, or nested lists (FeedIDs, []any, []string); nested lists are
// flattened in order before joining.
type FeedIDs []any

// Feeds returns FeedIDs for a list of string identifiers.
func Feeds(ids ...string) FeedIDs {
	f := make(FeedIDs, len(ids))
	for i, id := range ids {
		f[i] = id
	}
	return f
}

// Flatten returns the identifiers of f as strings, depth first.
func (f FeedIDs) Flatten() []string {
	out := make([]string, 0, len(f))
	for _, v := range f {
		out = appendFlat(out, v)
	}
	return out
}

func appendFlat(out []string, v any) []string {
	switch t := v.(type) {
	case nil:
		return append(out, "")
	case string:
		return append(out, t)
	case []string:
		return append(out, t...)
	case FeedIDs:
		for _, e := range t {
			out = appendFlat(out, e)
		}
		return out
	case []any:
		for _, e := range t {
			out = appendFlat(out, e)
		}
		return out
	default:
		return append(out, fmt.Sprint(t))
	}
}

// Join returns the comma-joined flattened identifiers.
func (f FeedIDs) Join() string {
	return strings.Join(f.Flatten(), ",")
}
