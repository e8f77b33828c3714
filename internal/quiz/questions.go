// internal/quiz/questions.go
package quiz

// Question is the metadata the presentation layer renders; the engine only
// consumes the option values via Answers.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var questions = []Question{
	{
		ID:   QuestionFlavor,
		Text: "¿Qué tipo de sabores prefieres en tu café?",
		Options: []Option{
			{Label: "Frutales / brillantes", Value: "fruity"},
			{Label: "Achocolatados / dulces", Value: "chocolate"},
			{Label: "Nueces / caramelo", Value: "nutty"},
			{Label: "Especiados / complejos", Value: "spicy"},
		},
	},
	{
		ID:   QuestionIntensity,
		Text: "¿Qué tanta intensidad buscas?",
		Options: []Option{
			{Label: "Suave", Value: "mild"},
			{Label: "Media", Value: "medium"},
			{Label: "Alta", Value: "strong"},
		},
	},
	{
		ID:   QuestionBitterness,
		Text: "¿Qué nivel de amargor disfrutas o toleras?",
		Options: []Option{
			{Label: "Bajo", Value: "low"},
			{Label: "Medio", Value: "medium"},
			{Label: "Alto", Value: "high"},
		},
	},
	{
		ID:   QuestionPrep,
		Text: "¿Cómo preparas tu café normalmente?",
		Options: []Option{
			{Label: "Uso máquina espresso", Value: "espresso"},
			{Label: "Uso cafetera de filtro", Value: "filter"},
			{Label: "Uso prensa francesa", Value: "french_press"},
			{Label: "Lo compro en grano para moler en casa", Value: "whole_bean"},
		},
	},
}

// Questions returns the fixed question list in presentation order.
func Questions() []Question {
	return append([]Question(nil), questions...)
}
