// internal/quiz/quiz_test.go
package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendNuttyMildFilter(t *testing.T) {
	answers := Answers{
		QuestionFlavor:     "nutty",
		QuestionIntensity:  "mild",
		QuestionBitterness: "low",
		QuestionPrep:       "filter",
	}

	rec := Recommend(answers)
	assert.Equal(t, "kantutani-bolivia", rec.ProductID)
	assert.Equal(t, GrindMedium, rec.Grind)
}

func TestRecommendChocolateStrongEspresso(t *testing.T) {
	answers := Answers{
		QuestionFlavor:     "chocolate",
		QuestionIntensity:  "strong",
		QuestionBitterness: "high",
		QuestionPrep:       "espresso",
	}

	rec := Recommend(answers)
	assert.Equal(t, "minas-gerais-brasil", rec.ProductID)
	assert.Equal(t, GrindFine, rec.Grind)
}

func TestRecommendSpicyWholeBean(t *testing.T) {
	answers := Answers{
		QuestionFlavor:     "spicy",
		QuestionIntensity:  "medium",
		QuestionBitterness: "medium",
		QuestionPrep:       "whole_bean",
	}

	rec := Recommend(answers)
	assert.Equal(t, "pack-tres-origenes", rec.ProductID)
	assert.Equal(t, GrindWholeBean, rec.Grind)
}

func TestRecommendGrindFollowsPrep(t *testing.T) {
	cases := map[string]string{
		"espresso":     GrindFine,
		"filter":       GrindMedium,
		"french_press": GrindCoarse,
		"whole_bean":   GrindWholeBean,
	}

	for prep, want := range cases {
		rec := Recommend(Answers{QuestionPrep: prep})
		assert.Equal(t, want, rec.Grind, "prep %q", prep)
	}
}

func TestRecommendTieBreaksOnCandidateOrder(t *testing.T) {
	// chocolate alone scores minas-gerais-brasil and kantutani-bolivia 2
	// each; kantutani comes first in candidate order and must win.
	rec := Recommend(Answers{QuestionFlavor: "chocolate"})
	assert.Equal(t, "kantutani-bolivia", rec.ProductID)
}

func TestRecommendEmptyAnswers(t *testing.T) {
	// All scores zero, so the first candidate wins and the grind is the
	// whole-bean default.
	rec := Recommend(Answers{})
	assert.Equal(t, "kantutani-bolivia", rec.ProductID)
	assert.Equal(t, GrindWholeBean, rec.Grind)

	// Nil map behaves the same as an empty one
	rec = Recommend(nil)
	assert.Equal(t, "kantutani-bolivia", rec.ProductID)
}

func TestRecommendUnknownTokensContributeNothing(t *testing.T) {
	rec := Recommend(Answers{
		QuestionFlavor: "umami",
		QuestionPrep:   "cold_brew",
	})
	assert.Equal(t, "kantutani-bolivia", rec.ProductID)
	assert.Equal(t, GrindWholeBean, rec.Grind)
}

func TestRecommendIsDeterministic(t *testing.T) {
	answers := Answers{
		QuestionFlavor:     "fruity",
		QuestionIntensity:  "mild",
		QuestionBitterness: "low",
		QuestionPrep:       "french_press",
	}

	first := Recommend(answers)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Recommend(answers))
	}
}

func TestCandidatesReturnsCopy(t *testing.T) {
	candidates := Candidates()
	assert.Equal(t, []string{
		"kantutani-bolivia",
		"pack-tres-origenes",
		"huehuetenango-guatemala",
		"huila-colombia",
		"minas-gerais-brasil",
	}, candidates)

	candidates[0] = "mutated"
	assert.Equal(t, "kantutani-bolivia", Candidates()[0])
}

func TestQuestionsMetadata(t *testing.T) {
	questions := Questions()
	assert.Len(t, questions, 4)

	assert.Equal(t, QuestionFlavor, questions[0].ID)
	assert.Equal(t, QuestionPrep, questions[3].ID)

	for _, q := range questions {
		assert.NotEmpty(t, q.Text, "question %d", q.ID)
		assert.NotEmpty(t, q.Options, "question %d", q.ID)
	}
}
