package render

import (
	"fmt"
	"strings"

	"tripweaver/internal/pipeline"
)

// Report renders a completed analysis result as a markdown trip report.
// Optional sections (DNA, story, insights) are simply omitted when the run
// did not produce them.
func Report(result *pipeline.Result) string {
	var b strings.Builder

	title := result.Meta.Title
	if title == "" {
		title = "Trip Report"
	}
	b.WriteString(fmt.Sprintf("# %s\n\n", title))

	if !result.Meta.StartDate.IsZero() {
		b.WriteString(fmt.Sprintf("**Dates:** %s — %s (%d days)\n",
			result.Meta.StartDate.Format("2006-01-02"),
			result.Meta.EndDate.Format("2006-01-02"),
			result.Meta.DayCount()))
	}
	b.WriteString(fmt.Sprintf("**Places:** %d  **Photos:** %d  **Distance:** %.1f km\n\n",
		len(result.Places), result.Meta.PhotoCount, result.Meta.TotalDistanceKm))

	if result.TripScore != nil {
		b.WriteString("## Trip Score\n\n")
		b.WriteString(fmt.Sprintf("%s **%s** — average %.0f, peak %d, %d badge(s)\n\n",
			result.TripScore.TripGrade.Emoji(),
			result.TripScore.TripGrade.DisplayName(),
			result.TripScore.AverageScore,
			result.TripScore.PeakScore,
			result.TripScore.TotalBadges))
		b.WriteString(result.TripScore.Summary + "\n\n")
	}

	if result.DNA != nil {
		writeDNA(&b, result)
	}

	if len(result.Moments) > 0 {
		writeMoments(&b, result)
	}

	if result.Story != nil {
		writeStory(&b, result)
	}

	if len(result.InsightViews) > 0 {
		b.WriteString("## Insights\n\n")
		for _, in := range result.InsightViews {
			b.WriteString(fmt.Sprintf("- %s **%s** (%s): %s\n",
				in.Emoji, in.Title, in.Importance.DisplayName(), in.Description))
		}
		if result.InsightSummary != "" {
			b.WriteString("\n" + result.InsightSummary + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeDNA(b *strings.Builder, result *pipeline.Result) {
	profile := result.DNA
	b.WriteString("## Travel DNA\n\n")
	b.WriteString(fmt.Sprintf("%s **%s**", profile.Primary.Emoji(), profile.Primary.DisplayName()))
	if profile.Secondary != "" {
		b.WriteString(fmt.Sprintf(" / %s %s", profile.Secondary.Emoji(), profile.Secondary.DisplayName()))
	}
	b.WriteString(fmt.Sprintf("  `%s`\n\n", profile.Code))
	b.WriteString(fmt.Sprintf("%s\n\n", profile.Primary.Description()))
	b.WriteString(fmt.Sprintf("- Pacing: %s\n", profile.Pacing.DisplayName()))
	b.WriteString(fmt.Sprintf("- Time of day: %d%% morning / %d%% afternoon / %d%% evening\n",
		profile.TimePreference.Morning, profile.TimePreference.Afternoon, profile.TimePreference.Evening))
	b.WriteString(fmt.Sprintf("- Exploration %d · Social %d · Culture %d\n",
		profile.ExplorationScore, profile.SocialScore, profile.CultureScore))
	if len(profile.Traits) > 0 {
		names := make([]string, 0, len(profile.Traits))
		for _, trait := range profile.Traits {
			names = append(names, trait.Name)
		}
		b.WriteString(fmt.Sprintf("- Traits: %s\n", strings.Join(names, ", ")))
	}
	b.WriteString("\n")
}

func writeMoments(b *strings.Builder, result *pipeline.Result) {
	b.WriteString("## Moments\n\n")
	b.WriteString("| Place | Score | Grade | Badges |\n")
	b.WriteString("|-------|-------|-------|--------|\n")

	titleByID := make(map[string]string, len(result.Places))
	for _, place := range result.Places {
		titleByID[place.Cluster.ID] = place.DisplayTitle
	}

	for _, moment := range result.Moments {
		badges := make([]string, 0, len(moment.Badges))
		for _, badge := range moment.Badges {
			badges = append(badges, badge.Emoji()+" "+badge.DisplayName())
		}
		title := titleByID[moment.ClusterID]
		if title == "" {
			title = moment.ClusterID
		}
		b.WriteString(fmt.Sprintf("| %s | %d | %s %s | %s |\n",
			title, moment.Total, moment.Grade.Emoji(), moment.Grade.DisplayName(),
			strings.Join(badges, ", ")))
	}
	b.WriteString("\n")
}

func writeStory(b *strings.Builder, result *pipeline.Result) {
	tale := result.Story
	b.WriteString(fmt.Sprintf("## %s\n\n", tale.Title))
	b.WriteString(fmt.Sprintf("*%s*\n\n", tale.Tagline))
	b.WriteString(tale.Opening + "\n\n")
	for _, chapter := range tale.Chapters {
		b.WriteString(fmt.Sprintf("### %s\n\n%s\n\n", chapter.Title, chapter.Body))
	}
	b.WriteString("**The Peak.** " + tale.Climax + "\n\n")
	b.WriteString(tale.Closing + "\n\n")
	if len(tale.Keywords) > 0 {
		b.WriteString(fmt.Sprintf("`%s`\n\n", strings.Join(tale.Keywords, "` `")))
	}
}
