// internal/quiz/quiz.go

// Package quiz implements the barista questionnaire: a fixed four-question
// flow scored against the five origin coffees, returning exactly one
// recommended product and a grind suggestion.
package quiz

// Grind labels attached to line items and recommended by the quiz.
const (
	GrindWholeBean = "Grano entero"
	GrindFine      = "Molido fino"
	GrindMedium    = "Molido medio"
	GrindCoarse    = "Molido grueso"
)

// Question indexes (1-based, matching the popup flow).
const (
	QuestionFlavor     = 1
	QuestionIntensity  = 2
	QuestionBitterness = 3
	QuestionPrep       = 4
)

// Answers maps a question index to the selected option token. A missing
// answer contributes zero score.
type Answers map[int]string

// Recommendation is the engine's only output. The caller resolves ProductID
// against the live catalog; a stale id is skipped at display time, never an
// error here.
type Recommendation struct {
	ProductID string `json:"product_id"`
	Grind     string `json:"grind"`
}

// candidateOrder fixes the iteration order for scoring and, critically, for
// the tie-break: on equal top scores the earliest candidate wins. Reordering
// this slice changes recommendations.
var candidateOrder = []string{
	"kantutani-bolivia",
	"pack-tres-origenes",
	"huehuetenango-guatemala",
	"huila-colombia",
	"minas-gerais-brasil",
}

// Candidates returns the fixed candidate ids in tie-break order.
func Candidates() []string {
	return append([]string(nil), candidateOrder...)
}

// Recommend scores a completed answer set and returns the single winner.
// Scoring is purely additive across the four questions; the weights are the
// product team's hand-tuned table and are not derived from tasting profiles.
func Recommend(answers Answers) Recommendation {
	scores := make(map[string]int, len(candidateOrder))
	for _, id := range candidateOrder {
		scores[id] = 0
	}

	switch answers[QuestionFlavor] {
	case "fruity":
		scores["huehuetenango-guatemala"] += 3
		scores["huila-colombia"] += 1
	case "chocolate":
		scores["minas-gerais-brasil"] += 2
		scores["kantutani-bolivia"] += 2
		scores["huila-colombia"] += 1
	case "nutty":
		scores["kantutani-bolivia"] += 3
		scores["huila-colombia"] += 2
		scores["minas-gerais-brasil"] += 1
	case "spicy":
		scores["pack-tres-origenes"] += 3
		scores["huehuetenango-guatemala"] += 1
	}

	switch answers[QuestionIntensity] {
	case "mild":
		scores["kantutani-bolivia"] += 2
		scores["huehuetenango-guatemala"] += 2
	case "medium":
		scores["huila-colombia"] += 2
		scores["pack-tres-origenes"] += 2
		scores["kantutani-bolivia"] += 1
		scores["minas-gerais-brasil"] += 1
	case "strong":
		scores["minas-gerais-brasil"] += 2
		scores["huila-colombia"] += 1
	}

	switch answers[QuestionBitterness] {
	case "low":
		scores["kantutani-bolivia"] += 2
		scores["huehuetenango-guatemala"] += 2
	case "medium":
		scores["pack-tres-origenes"] += 2
		scores["huila-colombia"] += 2
	case "high":
		scores["minas-gerais-brasil"] += 3
	}

	grind := GrindWholeBean
	switch answers[QuestionPrep] {
	case "espresso":
		scores["minas-gerais-brasil"] += 2
		scores["pack-tres-origenes"] += 1
		grind = GrindFine
	case "filter":
		scores["huehuetenango-guatemala"] += 2
		scores["kantutani-bolivia"] += 2
		scores["huila-colombia"] += 1
		grind = GrindMedium
	case "french_press":
		scores["huila-colombia"] += 2
		scores["minas-gerais-brasil"] += 1
		grind = GrindCoarse
	case "whole_bean":
		scores["pack-tres-origenes"] += 3
		grind = GrindWholeBean
	}

	maxScore := -1
	winner := candidateOrder[0]
	for _, id := range candidateOrder {
		if scores[id] > maxScore {
			maxScore = scores[id]
			winner = id
		}
	}

	return Recommendation{ProductID: winner, Grind: grind}
}
