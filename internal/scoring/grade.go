package scoring

// Grade is the six-level ordinal label derived purely from a numeric score.
type Grade string

const (
	GradeCasual    Grade = "casual"
	GradeOrdinary  Grade = "ordinary"
	GradePleasant  Grade = "pleasant"
	GradeMemorable Grade = "memorable"
	GradeEpic      Grade = "epic"
	GradeLegendary Grade = "legendary"
)

var gradeRank = map[Grade]int{
	GradeCasual:    0,
	GradeOrdinary:  1,
	GradePleasant:  2,
	GradeMemorable: 3,
	GradeEpic:      4,
	GradeLegendary: 5,
}

var gradeEmoji = map[Grade]string{
	GradeCasual:    "🙂",
	GradeOrdinary:  "👍",
	GradePleasant:  "😊",
	GradeMemorable: "🌟",
	GradeEpic:      "🔥",
	GradeLegendary: "👑",
}

var gradeDisplayName = map[Grade]string{
	GradeCasual:    "Casual",
	GradeOrdinary:  "Ordinary",
	GradePleasant:  "Pleasant",
	GradeMemorable: "Memorable",
	GradeEpic:      "Epic",
	GradeLegendary: "Legendary",
}

// GradeOf maps a 0-100 score onto its grade via fixed breakpoints.
func GradeOf(score int) Grade {
	switch {
	case score >= 90:
		return GradeLegendary
	case score >= 80:
		return GradeEpic
	case score >= 70:
		return GradeMemorable
	case score >= 60:
		return GradePleasant
	case score >= 50:
		return GradeOrdinary
	default:
		return GradeCasual
	}
}

// Rank returns the ordinal position of the grade, casual lowest.
func (g Grade) Rank() int {
	return gradeRank[g]
}

// Emoji returns the emoji for the grade.
func (g Grade) Emoji() string {
	return gradeEmoji[g]
}

// DisplayName returns a human-readable label for the grade.
func (g Grade) DisplayName() string {
	return gradeDisplayName[g]
}
