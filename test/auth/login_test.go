package auth

import (
	"testing"
	"time"

	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/utils"
	"Backend-WMS-ROI/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of the auth service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(email, password string) (*models.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func TestLogin(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Login Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestSuccessfulLogin", func(t *testing.T) {
		timer := test.NewTestTimer("Successful Login")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Successful Login", Duration: duration, Passed: true})
		}()

		mockService := new(MockAuthService)

		expectedUser := &models.User{
			Email: "consultant@example.com",
			Role:  models.RoleConsultant,
		}
		expectedToken := "jwt-token-123"

		mockService.On("Login", "consultant@example.com", "password123").Return(expectedUser, expectedToken, nil)

		user, token, err := mockService.Login("consultant@example.com", "password123")

		assert.NoError(t, err)
		assert.Equal(t, expectedUser, user)
		assert.Equal(t, expectedToken, token)
		mockService.AssertExpectations(t)
	})

	t.Run("TestLoginInvalidCredentials", func(t *testing.T) {
		timer := test.NewTestTimer("Login Invalid Credentials")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Login Invalid Credentials", Duration: duration, Passed: true})
		}()

		mockService := new(MockAuthService)
		mockService.On("Login", "invalid@example.com", "wrongpassword").Return(nil, "", assert.AnError)

		user, token, err := mockService.Login("invalid@example.com", "wrongpassword")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Empty(t, token)
		mockService.AssertExpectations(t)
	})

	t.Run("TestRoleValidation", func(t *testing.T) {
		timer := test.NewTestTimer("Role Validation")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Role Validation", Duration: duration, Passed: true})
			test.PerformanceAssertion(t, "Role Validation", duration, 100*time.Microsecond)
		}()

		for _, role := range []string{models.RoleAdmin, models.RoleConsultant, models.RoleSales, models.RoleViewer} {
			assert.True(t, models.IsValidRole(role), "role %q should be valid", role)
		}

		for _, role := range []string{"", "superadmin", "Admin", "consultant "} {
			assert.False(t, models.IsValidRole(role), "role %q should be invalid", role)
		}
	})
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("64f000000000000000000001", "admin@example.com", models.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := utils.ParseJWT("")
	assert.Error(t, err)

	_, err = utils.ParseJWT("not-a-token")
	assert.Error(t, err)
}
