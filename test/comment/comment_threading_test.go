package comment

import (
	"testing"

	"Backend-WMS-ROI/src/models"
	"Backend-WMS-ROI/src/services"
	"Backend-WMS-ROI/test"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// MockCommentService is a mock implementation of the comment service
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) CreateComment(comment *models.Comment) (*models.Comment, error) {
	args := m.Called(comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func TestCommentThreading(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Comment Threading Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestTopLevelComment", func(t *testing.T) {
		timer := test.NewTestTimer("Top Level Comment")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Top Level Comment", Duration: duration, Passed: true})
		}()

		mockService := new(MockCommentService)
		c := &models.Comment{
			TargetType: models.CommentTargetAssessment,
			TargetID:   primitive.NewObjectID(),
			Body:       "Picking numbers look optimistic.",
		}
		saved := *c
		saved.ID = primitive.NewObjectID()

		mockService.On("CreateComment", c).Return(&saved, nil)

		got, err := mockService.CreateComment(c)

		assert.NoError(t, err)
		assert.False(t, got.ID.IsZero())
		assert.True(t, got.ParentID.IsZero())
		mockService.AssertExpectations(t)
	})

	t.Run("TestReplyToReplyRejected", func(t *testing.T) {
		timer := test.NewTestTimer("Reply To Reply Rejected")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Reply To Reply Rejected", Duration: duration, Passed: true})
		}()

		mockService := new(MockCommentService)
		nested := &models.Comment{
			TargetType: models.CommentTargetReport,
			TargetID:   primitive.NewObjectID(),
			Body:       "replying to a reply",
			ParentID:   primitive.NewObjectID(),
		}

		mockService.On("CreateComment", nested).Return(nil, services.ErrReplyToReply)

		got, err := mockService.CreateComment(nested)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, services.ErrReplyToReply)
		mockService.AssertExpectations(t)
	})
}

func TestCommentValidation(t *testing.T) {
	valid := models.Comment{
		TargetType: models.CommentTargetReport,
		TargetID:   primitive.NewObjectID(),
		Body:       "Looks good to me.",
	}
	assert.NoError(t, validate.Struct(valid))

	noBody := models.Comment{
		TargetType: models.CommentTargetAssessment,
		TargetID:   primitive.NewObjectID(),
	}
	assert.Error(t, validate.Struct(noBody))

	badTarget := models.Comment{
		TargetType: "questionnaire",
		TargetID:   primitive.NewObjectID(),
		Body:       "wrong target",
	}
	assert.Error(t, validate.Struct(badTarget))
}
