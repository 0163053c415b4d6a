package search

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"job-board/internal/domain/job"
	"job-board/internal/domain/user"

	"github.com/google/uuid"
)

// RecommendationLimit bounds both the matched and the fallback result.
const RecommendationLimit = 6

// ProfileSource loads the stored skills and career roadmap of a user.
type ProfileSource interface {
	GetProfile(ctx context.Context, id uuid.UUID) (user.Profile, error)
}

type Recommendation struct {
	MissingSkills bool          `json:"missingSkills"`
	Skills        SkillSet      `json:"skills"`
	Jobs          []job.Posting `json:"jobs"`
}

type KeywordMatch struct {
	Posting job.Posting `json:"job"`
	Matches int         `json:"matchCount"`
}

type Recommender struct {
	store    Store
	profiles ProfileSource
	logger   *log.Logger
}

func NewRecommender(store Store, profiles ProfileSource, logger *log.Logger) *Recommender {
	return &Recommender{store: store, profiles: profiles, logger: logger}
}

// ResolveSkills picks the first non-empty skill source: the explicit
// comma-separated request value, then keywords from the roadmap text, then
// the stored skill list.
func ResolveSkills(explicit string, profile user.Profile) SkillSet {
	if s := NewSkillSet(strings.Split(explicit, ",")); len(s) > 0 {
		return s
	}
	if s := ExtractKeywords(profile.CareerRoadmap); len(s) > 0 {
		return s
	}
	return NewSkillSet(profile.Skills)
}

// Recommend returns up to RecommendationLimit active postings whose skills
// match the caller's. When nothing matches, the newest active postings are
// returned instead so the advisor never comes back empty-handed.
func (r *Recommender) Recommend(ctx context.Context, userID uuid.UUID, explicit string) (Recommendation, error) {
	var profile user.Profile
	if len(NewSkillSet(strings.Split(explicit, ","))) == 0 && r.profiles != nil && userID != uuid.Nil {
		p, err := r.profiles.GetProfile(ctx, userID)
		if err != nil && !errors.Is(err, user.ErrNotFound) {
			return Recommendation{}, err
		}
		profile = p
	}

	skills := ResolveSkills(explicit, profile)
	if len(skills) == 0 {
		return Recommendation{MissingSkills: true, Skills: SkillSet{}, Jobs: []job.Posting{}}, nil
	}

	order := SortNewest.Fields()
	matched, err := r.store.Find(ctx, Criteria{Active: true, SkillPatterns: skills}, order, 0, RecommendationLimit)
	if err != nil {
		return Recommendation{}, err
	}
	if len(matched) > 0 {
		return Recommendation{Skills: skills, Jobs: matched}, nil
	}

	if r.logger != nil {
		r.logger.Printf("[Advisor] no postings matched skills=%v, using newest", []string(skills))
	}
	recent, err := r.store.Find(ctx, Criteria{Active: true}, order, 0, RecommendationLimit)
	if err != nil {
		return Recommendation{}, err
	}
	if recent == nil {
		recent = []job.Posting{}
	}
	return Recommendation{Skills: skills, Jobs: recent}, nil
}

// Match ranks every active posting by how many of skills occur in its
// description.
func (r *Recommender) Match(ctx context.Context, skills []string) ([]KeywordMatch, error) {
	postings, err := r.store.Find(ctx, Criteria{Active: true}, SortNewest.Fields(), 0, 0)
	if err != nil {
		return nil, err
	}
	return RankByKeywordCount(postings, skills), nil
}

// RankByKeywordCount counts, for each posting, how many skill terms appear
// case-insensitively in its description and orders by that count, highest
// first. Equal counts keep their input order.
func RankByKeywordCount(postings []job.Posting, skills []string) []KeywordMatch {
	terms := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		terms = append(terms, s)
	}

	out := make([]KeywordMatch, 0, len(postings))
	for _, p := range postings {
		desc := strings.ToLower(p.Description)
		n := 0
		for _, t := range terms {
			if strings.Contains(desc, t) {
				n++
			}
		}
		out = append(out, KeywordMatch{Posting: p, Matches: n})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Matches > out[j].Matches
	})
	return out
}
