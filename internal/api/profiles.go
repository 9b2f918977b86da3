package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Hugo-git31/site-hugo-adopte-un-dev/internal/board"
)

// ProfileFilter are the candidate-search query parameters. List facets
// are comma-joined; empty values are omitted. All constraints combine
// conjunctively on the server.
type ProfileFilter struct {
	Query           string
	City            string
	Skills          []string
	Diplomas        []string
	Languages       []string
	ExperienceYears string
}

// Values renders the filter as listing query parameters.
func (f ProfileFilter) Values() url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if len(f.Skills) > 0 {
		q.Set("skills", strings.Join(f.Skills, ","))
	}
	if len(f.Diplomas) > 0 {
		q.Set("diplomas", strings.Join(f.Diplomas, ","))
	}
	if len(f.Languages) > 0 {
		q.Set("languages", strings.Join(f.Languages, ","))
	}
	if f.ExperienceYears != "" {
		q.Set("experience_years", f.ExperienceYears)
	}
	return q
}

// FilterFromValues rebuilds a ProfileFilter from listing query
// parameters, the inverse of Values.
func FilterFromValues(q url.Values) ProfileFilter {
	split := func(key string) []string {
		raw := q.Get(key)
		if raw == "" {
			return nil
		}
		return strings.Split(raw, ",")
	}
	return ProfileFilter{
		Query:           q.Get("q"),
		City:            q.Get("city"),
		Skills:          split("skills"),
		Diplomas:        split("diplomas"),
		Languages:       split("languages"),
		ExperienceYears: q.Get("experience_years"),
	}
}

// ProfileCreate is the minimal creation payload.
type ProfileCreate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	City      string `json:"city"`
	Skills    string `json:"skills,omitempty"`
}

// ProfileUpdate carries the editable profile fields for a PUT. Nil
// fields are omitted so a lone avatar_url update stays partial.
type ProfileUpdate struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	City       *string `json:"city,omitempty"`
	Skills     *string `json:"skills,omitempty"`
	JobTarget  *string `json:"job_target,omitempty"`
	Motivation *string `json:"motivation,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}

// ListProfiles fetches one page of candidate profiles matching filter.
func (c *Client) ListProfiles(ctx context.Context, page, pageSize int, filter ProfileFilter) (board.Page[board.CandidateProfile], error) {
	query := pageQuery(page, pageSize)
	for key, vals := range filter.Values() {
		query[key] = vals
	}
	var out board.Page[board.CandidateProfile]
	if err := c.get(ctx, "/api/profiles", query, &out); err != nil {
		return board.Page[board.CandidateProfile]{}, fmt.Errorf("list profiles: %w", err)
	}
	return out, nil
}

// GetProfile fetches a single candidate profile by id.
func (c *Client) GetProfile(ctx context.Context, id int64) (board.CandidateProfile, error) {
	var out board.CandidateProfile
	if err := c.get(ctx, "/api/profiles/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return board.CandidateProfile{}, fmt.Errorf("get profile %d: %w", id, err)
	}
	return out, nil
}

// CreateProfile registers the current user's candidate profile.
func (c *Client) CreateProfile(ctx context.Context, payload ProfileCreate) (board.CandidateProfile, error) {
	var out board.CandidateProfile
	if err := c.send(ctx, "POST", "/api/profiles", payload, &out); err != nil {
		return board.CandidateProfile{}, fmt.Errorf("create profile: %w", err)
	}
	return out, nil
}

// UpdateProfile applies the non-nil fields of payload to profile id.
func (c *Client) UpdateProfile(ctx context.Context, id int64, payload ProfileUpdate) (board.CandidateProfile, error) {
	var out board.CandidateProfile
	if err := c.send(ctx, "PUT", "/api/profiles/"+strconv.FormatInt(id, 10), payload, &out); err != nil {
		return board.CandidateProfile{}, fmt.Errorf("update profile %d: %w", id, err)
	}
	return out, nil
}

// CandidateFilters returns the selectable facet values for candidate
// search, cached once fetched.
func (c *Client) CandidateFilters(ctx context.Context) (board.FacetOptions, error) {
	key := board.CacheKey("candidate_filters", c.base)
	if cached, ok := board.CacheGetJSON[board.FacetOptions](ctx, key); ok {
		return cached, nil
	}
	var out board.FacetOptions
	if err := c.get(ctx, "/api/candidate_filters", nil, &out); err != nil {
		return board.FacetOptions{}, fmt.Errorf("candidate filters: %w", err)
	}
	board.CacheSetJSON(ctx, key, out)
	return out, nil
}
