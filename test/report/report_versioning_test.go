package report

import (
	"testing"
	"time"

	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/test"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockReportService is a mock implementation of the report service
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) UpdateReportBody(id string, body models.ReportBody) (*models.Report, error) {
	args := m.Called(id, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockReportService) RestoreVersion(id string, version int) (*models.Report, error) {
	args := m.Called(id, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func sampleReport(version int) *models.Report {
	return &models.Report{
		ID:             primitive.NewObjectID(),
		AssessmentID:   primitive.NewObjectID(),
		CompanyID:      primitive.NewObjectID(),
		Status:         models.ReportDraft,
		CurrentVersion: version,
		Body: models.ReportBody{
			Title:   "ROI Assessment Report",
			Summary: "Projected WMS savings for the next five years.",
			Roi: models.RoiSnapshot{
				TotalAnnualBenefit: 225320,
				ImplementationCost: 250000,
				PaybackMonths:      13.31,
				DiscountRate:       0.08,
				ComputedAt:         time.Now(),
			},
		},
	}
}

func TestReportVersioning(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Report Versioning Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestUpdateBumpsVersion", func(t *testing.T) {
		timer := test.NewTestTimer("Update Bumps Version")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Update Bumps Version", Duration: duration, Passed: true})
		}()

		mockService := new(MockReportService)

		before := sampleReport(3)
		edited := before.Body
		edited.Summary = "Revised after client review."

		after := *before
		after.Body = edited
		after.CurrentVersion = 4

		mockService.On("UpdateReportBody", before.ID.Hex(), edited).Return(&after, nil)

		got, err := mockService.UpdateReportBody(before.ID.Hex(), edited)

		assert.NoError(t, err)
		assert.Equal(t, 4, got.CurrentVersion)
		assert.Equal(t, "Revised after client review.", got.Body.Summary)
		// the ROI snapshot never changes on edit
		assert.Equal(t, before.Body.Roi, got.Body.Roi)
		mockService.AssertExpectations(t)
	})

	t.Run("TestRestoreIsAppendOnly", func(t *testing.T) {
		timer := test.NewTestTimer("Restore Is Append Only")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Restore Is Append Only", Duration: duration, Passed: true})
		}()

		mockService := new(MockReportService)

		current := sampleReport(5)
		restored := *current
		restored.CurrentVersion = 6 // restoring v2 appends a new head, never rewinds

		mockService.On("RestoreVersion", current.ID.Hex(), 2).Return(&restored, nil)

		got, err := mockService.RestoreVersion(current.ID.Hex(), 2)

		assert.NoError(t, err)
		assert.Greater(t, got.CurrentVersion, current.CurrentVersion)
		mockService.AssertExpectations(t)
	})

	t.Run("TestRestoreUnknownVersion", func(t *testing.T) {
		timer := test.NewTestTimer("Restore Unknown Version")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Restore Unknown Version", Duration: duration, Passed: true})
		}()

		mockService := new(MockReportService)
		id := primitive.NewObjectID().Hex()
		mockService.On("RestoreVersion", id, 99).Return(nil, assert.AnError)

		got, err := mockService.RestoreVersion(id, 99)

		assert.Error(t, err)
		assert.Nil(t, got)
		mockService.AssertExpectations(t)
	})
}

func TestShareTokenShape(t *testing.T) {
	token := uuid.NewString()

	parsed, err := uuid.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, token, parsed.String())

	// two shares never collide
	assert.NotEqual(t, token, uuid.NewString())
}

func TestVersionNumbersAreOneBased(t *testing.T) {
	v := models.ReportVersion{
		ReportID: primitive.NewObjectID(),
		Version:  1,
		Note:     "initial generation",
		SavedAt:  time.Now(),
	}

	assert.GreaterOrEqual(t, v.Version, 1)
	assert.Equal(t, "initial generation", v.Note)
}
