package setting

import (
	"testing"

	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/test"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestScopeValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Setting Scope Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestValidScopes", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Scopes")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Valid Scopes", Duration: duration, Passed: true})
		}()

		assert.True(t, models.IsValidScope(models.ScopeGlobal))
		assert.True(t, models.IsValidScope(models.ScopeCompany))
		assert.True(t, models.IsValidScope(models.ScopeUser))
	})

	t.Run("TestInvalidScopes", func(t *testing.T) {
		timer := test.NewTestTimer("Invalid Scopes")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Invalid Scopes", Duration: duration, Passed: true})
		}()

		assert.False(t, models.IsValidScope(""))
		assert.False(t, models.IsValidScope("team"))
		assert.False(t, models.IsValidScope("GLOBAL"))
	})

	t.Run("TestStructValidation", func(t *testing.T) {
		timer := test.NewTestTimer("Struct Validation")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Struct Validation", Duration: duration, Passed: true})
		}()

		ok := models.Setting{
			Scope: models.ScopeCompany,
			Key:   "roi.discountRate",
			Value: 0.1,
		}
		assert.NoError(t, validate.Struct(ok))

		missingKey := models.Setting{Scope: models.ScopeGlobal}
		assert.Error(t, validate.Struct(missingKey))

		badScope := models.Setting{Scope: "workspace", Key: "roi.discountRate"}
		assert.Error(t, validate.Struct(badScope))
	})
}
