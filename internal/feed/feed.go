// Package feed composes the newsfeed ordering for a viewer.
package feed

import (
	"sort"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/entities"
)

// DefaultPageSize ...
const DefaultPageSize = 10

// Candidate is a post with the signals needed for ordering.
type Candidate struct {
	Post          entities.Post
	RankingScore  float64
	ViewerReacted bool
}

type ranked struct {
	Candidate

	isFriend     bool
	anchor       bool
	friendTagged bool
	isOwner      bool
}

// Compose produces the ordered feed for the viewer over the full candidate
// set. The sort is stable, candidates which compare equal keep input order.
func Compose(viewer string, neighbors map[string]struct{}, candidates []Candidate) []Candidate {
	rr := make([]ranked, 0, len(candidates))

	for _, c := range candidates {
		r := ranked{Candidate: c}

		_, r.isFriend = neighbors[c.Post.Owner]
		r.isOwner = c.Post.Owner == viewer
		// un-reacted priority never applies to one's own posts
		r.anchor = !c.ViewerReacted && !r.isOwner

		for _, tagged := range c.Post.TaggedAccounts {
			if _, ok := neighbors[tagged]; ok {
				r.friendTagged = true
				break
			}
		}

		// own low-performing posts are hidden from one's own feed
		if r.isOwner && c.RankingScore <= 0.0 {
			continue
		}

		rr = append(rr, r)
	}

	sort.SliceStable(rr, func(i, j int) bool {
		a, b := rr[i], rr[j]

		if a.isFriend != b.isFriend {
			return a.isFriend
		}
		if a.anchor != b.anchor {
			return a.anchor
		}
		if a.friendTagged != b.friendTagged {
			return a.friendTagged
		}
		if a.isOwner != b.isOwner {
			return b.isOwner
		}

		return a.RankingScore > b.RankingScore
	})

	out := make([]Candidate, len(rr))
	for i, r := range rr {
		out[i] = r.Candidate
	}

	return out
}

// Page slices an already ordered sequence. Pages are numbered from 1,
// non-positive size falls back to DefaultPageSize.
func Page(items []Candidate, page, size int) []Candidate {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	from := (page - 1) * size
	if from >= len(items) {
		return nil
	}

	to := from + size
	if to > len(items) {
		to = len(items)
	}

	return items[from:to]
}
