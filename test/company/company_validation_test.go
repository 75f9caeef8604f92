package company

import (
	"testing"

	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/test"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func validCompany() models.Company {
	return models.Company{
		Name:     "Acme Distribution",
		Industry: "retail",
		Contact: models.Contact{
			Name:  "Jordan Li",
			Email: "jordan@acme.example",
		},
		Warehouse: models.WarehouseProfile{
			Sites:          2,
			SkuCount:       12000,
			OrdersPerDay:   900,
			Pickers:        18,
			WagePerHour:    18,
			ErrorRatePct:   0.02,
			InventoryValue: 2000000,
		},
	}
}

func TestCompanyValidation(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Company Validation Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestValidCompany", func(t *testing.T) {
		timer := test.NewTestTimer("Valid Company")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Valid Company", Duration: duration, Passed: true})
		}()

		assert.NoError(t, validate.Struct(validCompany()))
	})

	t.Run("TestMissingName", func(t *testing.T) {
		timer := test.NewTestTimer("Missing Name")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Missing Name", Duration: duration, Passed: true})
		}()

		c := validCompany()
		c.Name = ""
		assert.Error(t, validate.Struct(c))
	})

	t.Run("TestBadContactEmail", func(t *testing.T) {
		timer := test.NewTestTimer("Bad Contact Email")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Bad Contact Email", Duration: duration, Passed: true})
		}()

		c := validCompany()
		c.Contact.Email = "not-an-email"
		assert.Error(t, validate.Struct(c))

		// contact email is optional, empty passes
		c.Contact.Email = ""
		assert.NoError(t, validate.Struct(c))
	})

	t.Run("TestWarehouseBounds", func(t *testing.T) {
		timer := test.NewTestTimer("Warehouse Bounds")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Warehouse Bounds", Duration: duration, Passed: true})
		}()

		c := validCompany()
		c.Warehouse.Pickers = -1
		assert.Error(t, validate.Struct(c))

		c = validCompany()
		c.Warehouse.ErrorRatePct = 1.5 // stored as a fraction, not a percent
		assert.Error(t, validate.Struct(c))
	})
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, models.IsValidRole(models.RoleAdmin))
	assert.True(t, models.IsValidRole(models.RoleViewer))
	assert.False(t, models.IsValidRole("superuser"))
	assert.False(t, models.IsValidRole(""))
}
