package story

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"tripweaver/internal/core"
	"tripweaver/internal/dna"
	"tripweaver/internal/scoring"
)

const maxKeywords = 10

// memorableThreshold is the moment score at or above which a chapter gains a
// "most memorable" sentence.
const memorableThreshold = 80

// Selector chooses one index out of n equally valid templates. Production uses
// a rand-backed selector; tests inject a fixed one to pin the output.
type Selector interface {
	Pick(n int) int
}

type randSelector struct {
	rng *rand.Rand
}

func (s randSelector) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return s.rng.Intn(n)
}

// NewRandomSelector returns the production selector seeded from the given
// source value.
func NewRandomSelector(seed int64) Selector {
	return randSelector{rng: rand.New(rand.NewSource(seed))}
}

// FixedSelector always picks the same index (clamped to range). Intended for
// tests.
type FixedSelector int

// Pick implements Selector.
func (f FixedSelector) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(f)
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Chapter is one story section tied to a single cluster, in cluster order.
type Chapter struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	PlaceName string `json:"place_name"`
	Emoji     string `json:"emoji"`
	Score     int    `json:"score,omitempty"` // moment total; 0 when unscored
}

// TravelStory is the generated narrative for one trip.
type TravelStory struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Opening  string    `json:"opening"`
	Chapters []Chapter `json:"chapters"` // one per cluster, cluster order
	Climax   string    `json:"climax"`
	Closing  string    `json:"closing"`
	Tagline  string    `json:"tagline"`
	Mood     Mood      `json:"mood"`
	Keywords []string  `json:"keywords"` // deduplicated, at most ten
}

// Context carries everything the weaver reads. DNA and Moments are optional;
// absent inputs degrade to generic text rather than erroring.
type Context struct {
	Clusters []core.PlaceCluster
	Meta     core.TripMetadata
	DNA      *dna.TravelDNA
	Moments  map[string]scoring.MomentScore // keyed by cluster ID
	Selector Selector
}

// Generate weaves the full story. Chapter count always equals cluster count
// and preserves cluster order; only template selection is randomized, the
// climax is deterministic.
func Generate(sctx Context) TravelStory {
	selector := sctx.Selector
	if selector == nil {
		selector = NewRandomSelector(int64(uuid.New().ID()))
	}

	mood := selectMood(sctx.Clusters, sctx.DNA)
	days := sctx.Meta.DayCount()
	firstPlace := "the first stop"
	if len(sctx.Clusters) > 0 {
		firstPlace = placeName(sctx.Clusters[0])
	}
	tripName := sctx.Meta.Title
	if tripName == "" {
		tripName = "the Journey"
	}

	chapters := make([]Chapter, 0, len(sctx.Clusters))
	for _, cluster := range sctx.Clusters {
		chapters = append(chapters, chapter(cluster, sctx.Moments))
	}

	return TravelStory{
		ID:       uuid.NewString(),
		Title:    fmt.Sprintf(pick(selector, titleTemplates[mood]), tripName),
		Opening:  opening(selector, mood, days, firstPlace),
		Chapters: chapters,
		Climax:   climax(sctx.Clusters, sctx.Moments),
		Closing:  fmt.Sprintf(pick(selector, closingTemplates[mood]), days),
		Tagline:  pick(selector, taglineTemplates[mood]),
		Mood:     mood,
		Keywords: keywords(sctx.Clusters, sctx.DNA),
	}
}

func pick(selector Selector, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[selector.Pick(len(pool))]
}

// opening handles the two interpolation orders used across the pools.
func opening(selector Selector, mood Mood, days int, firstPlace string) string {
	tmpl := pick(selector, openingTemplates[mood])
	// Pools interleave "%d ... %s" and "%s ... %d" forms.
	if strings.Index(tmpl, "%d") < strings.Index(tmpl, "%s") {
		return fmt.Sprintf(tmpl, days, firstPlace)
	}
	return fmt.Sprintf(tmpl, firstPlace, days)
}

func placeName(cluster core.PlaceCluster) string {
	if cluster.Name != "" {
		return cluster.Name
	}
	return cluster.Activity.DisplayName()
}

// chapter renders one cluster through the per-activity template switch.
func chapter(cluster core.PlaceCluster, moments map[string]scoring.MomentScore) Chapter {
	name := placeName(cluster)
	var body string
	switch cluster.Activity {
	case core.ActivityCafe:
		body = fmt.Sprintf("At %s the pace dropped to the speed of a slowly cooling cup. Conversation and people-watching filled the gaps the itinerary left open.", name)
	case core.ActivityRestaurant:
		body = fmt.Sprintf("%s was a meal that became a memory. Plates arrived, opinions were traded, and nobody reached for their phone except to photograph the food.", name)
	case core.ActivityBeach:
		body = fmt.Sprintf("The hours at %s blurred into sand, salt and horizon. Time at the water's edge always runs slower and ends sooner than it should.", name)
	case core.ActivityMountain:
		body = fmt.Sprintf("%s demanded legs and rewarded eyes. Every switchback reframed the valley below until the climb itself became the point.", name)
	case core.ActivityCulture:
		body = fmt.Sprintf("%s held centuries in its quiet rooms. Walking through it felt like reading someone else's diary with permission.", name)
	case core.ActivityTourist:
		body = fmt.Sprintf("%s is on every list for a reason. Even braced for the crowds, the first full view of it still landed hard.", name)
	case core.ActivityShopping:
		body = fmt.Sprintf("%s was a treasure hunt with no map. Half the fun was the bargaining; the other half was justifying the suitcase space.", name)
	default:
		body = fmt.Sprintf("%s was an unplanned pause that earned its place in the story. Not every stop needs a category to be worth keeping.", name)
	}

	ch := Chapter{
		Title:     fmt.Sprintf("%s %s", cluster.Activity.Emoji(), name),
		Body:      body,
		PlaceName: name,
		Emoji:     cluster.Activity.Emoji(),
	}
	if moment, ok := moments[cluster.ID]; ok {
		ch.Score = moment.Total
		if moment.Total >= memorableThreshold {
			ch.Body += fmt.Sprintf(" Looking back, %s stands among the most memorable moments of the whole trip.", name)
		}
	}
	return ch
}

// climax narrates the single highest-scoring moment. This is the one section
// that is never randomized.
func climax(clusters []core.PlaceCluster, moments map[string]scoring.MomentScore) string {
	if len(clusters) == 0 {
		return "Every trip has a high point; this one is still waiting to be scored."
	}

	var best *core.PlaceCluster
	var bestMoment scoring.MomentScore
	for i := range clusters {
		moment, ok := moments[clusters[i].ID]
		if !ok {
			continue
		}
		if best == nil || moment.Total > bestMoment.Total {
			best = &clusters[i]
			bestMoment = moment
		}
	}
	if best == nil {
		return fmt.Sprintf("If the trip had a single peak, it was somewhere between %s and the last goodbye.", placeName(clusters[0]))
	}

	text := fmt.Sprintf("The peak of the trip came at %s, scoring %d out of 100.", placeName(*best), bestMoment.Total)
	switch bestMoment.Grade {
	case scoring.GradeLegendary:
		text += " It was the kind of moment trips are planned around, and it happened anyway."
	case scoring.GradeEpic:
		text += " Few places earn a return visit before you have even left; this one did."
	}
	if len(bestMoment.Badges) > 0 {
		names := make([]string, 0, len(bestMoment.Badges))
		for _, badge := range bestMoment.Badges {
			names = append(names, badge.DisplayName())
		}
		text += fmt.Sprintf(" Badges earned there: %s.", strings.Join(names, ", "))
	}
	return text
}

// keywords unions cluster names, activity names, the DNA primary type and DNA
// traits, deduplicated and truncated to ten.
func keywords(clusters []core.PlaceCluster, profile *dna.TravelDNA) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(word string) {
		if word == "" || seen[word] || len(out) >= maxKeywords {
			return
		}
		seen[word] = true
		out = append(out, word)
	}

	for _, cluster := range clusters {
		add(cluster.Name)
	}
	for _, cluster := range clusters {
		add(cluster.Activity.DisplayName())
	}
	if profile != nil {
		add(profile.Primary.DisplayName())
		for _, trait := range profile.Traits {
			add(trait.Name)
		}
	}
	return out
}
