package services

import (
	"testing"

	"Backend-WMS-ROI/src/models"

	"github.com/stretchr/testify/assert"
)

func progressQuestionnaire() *models.Questionnaire {
	return &models.Questionnaire{
		Sections: []models.Section{
			{
				Title: "Operations",
				Questions: []models.Question{
					{Key: "ordersPerDay", Type: models.QuestionNumber, Required: true},
					{Key: "pickEfficiencyGainPct", Type: models.QuestionNumber, Required: true},
					{Key: "notes", Type: models.QuestionText, Required: false},
				},
			},
			{
				Title: "Costs",
				Questions: []models.Question{
					{Key: "implementationCost", Type: models.QuestionNumber, Required: true},
					{Key: "costPerError", Type: models.QuestionNumber, Required: true},
				},
			},
		},
	}
}

func TestComputeProgressPartialAnswers(t *testing.T) {
	q := progressQuestionnaire()

	answers := map[string]interface{}{
		"ordersPerDay":       900,
		"implementationCost": 250000.0,
		"notes":              "optional answers never move the needle",
	}

	assert.InDelta(t, 50, computeProgress(q, answers), 0.001)
}

func TestComputeProgressComplete(t *testing.T) {
	q := progressQuestionnaire()

	answers := map[string]interface{}{
		"ordersPerDay":          900,
		"pickEfficiencyGainPct": 0.2,
		"implementationCost":    250000.0,
		"costPerError":          22.0,
	}

	assert.InDelta(t, 100, computeProgress(q, answers), 0.001)
}

func TestComputeProgressEmptyAnswersDoNotCount(t *testing.T) {
	q := progressQuestionnaire()

	answers := map[string]interface{}{
		"ordersPerDay":          "",
		"pickEfficiencyGainPct": nil,
		"implementationCost":    250000.0,
	}

	assert.InDelta(t, 25, computeProgress(q, answers), 0.001)
}

func TestComputeProgressNoAnswers(t *testing.T) {
	assert.Zero(t, computeProgress(progressQuestionnaire(), map[string]interface{}{}))
	assert.Zero(t, computeProgress(progressQuestionnaire(), nil))
}

func TestComputeProgressNoRequiredQuestions(t *testing.T) {
	q := &models.Questionnaire{
		Sections: []models.Section{
			{
				Title: "Freeform",
				Questions: []models.Question{
					{Key: "notes", Type: models.QuestionText, Required: false},
				},
			},
		},
	}

	// nothing required: any answer at all counts as complete
	assert.Zero(t, computeProgress(q, map[string]interface{}{}))
	assert.InDelta(t, 100, computeProgress(q, map[string]interface{}{"notes": "done"}), 0.001)
}
