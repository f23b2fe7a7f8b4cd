package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mountainride-backend/internal/config"
	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/repository"
)

// overdueRepo only implements ListOverdue; any other call panics
type overdueRepo struct {
	repository.RentalRepository
	mock.Mock
}

func (m *overdueRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, c *domain.Customer, r *domain.Rental) error {
	return m.Called(ctx, c, r).Error(0)
}
func (m *MockEmailService) SendRentalCompletion(ctx context.Context, c *domain.Customer, r *domain.Rental) error {
	return m.Called(ctx, c, r).Error(0)
}
func (m *MockEmailService) SendOverdueReport(ctx context.Context, to string, overdue []domain.Rental) error {
	return m.Called(ctx, to, overdue).Error(0)
}

var jobNow = time.Date(2026, 2, 10, 6, 0, 0, 0, time.UTC)

func newTestRunner(repo *overdueRepo, email *MockEmailService) *JobRunner {
	jr := NewJobRunner(repo, email, config.JobsConfig{OverdueReport: "0 0 6 * * *", ReportEmail: "desk@mountainride.fr"})
	jr.now = func() time.Time { return jobNow }
	return jr
}

func TestReportOverdueRentals(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends Report", func(t *testing.T) {
		repo := new(overdueRepo)
		email := new(MockEmailService)
		overdue := []domain.Rental{{ID: 7, Code: "LOCMR-2026-0000000007"}}
		repo.On("ListOverdue", ctx, jobNow).Return(overdue, nil)
		email.On("SendOverdueReport", ctx, "desk@mountainride.fr", overdue).Return(nil)

		err := newTestRunner(repo, email).reportOverdueRentals(ctx)
		assert.NoError(t, err)
		email.AssertExpectations(t)
	})

	t.Run("Nothing Overdue", func(t *testing.T) {
		repo := new(overdueRepo)
		email := new(MockEmailService)
		repo.On("ListOverdue", ctx, jobNow).Return([]domain.Rental{}, nil)

		assert.NoError(t, newTestRunner(repo, email).reportOverdueRentals(ctx))
		email.AssertNotCalled(t, "SendOverdueReport", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Store Failure", func(t *testing.T) {
		repo := new(overdueRepo)
		email := new(MockEmailService)
		repo.On("ListOverdue", ctx, jobNow).Return(nil, errors.New("db down"))

		err := newTestRunner(repo, email).reportOverdueRentals(ctx)
		assert.Error(t, err)
	})

	t.Run("Email Failure Is Not A Job Failure", func(t *testing.T) {
		repo := new(overdueRepo)
		email := new(MockEmailService)
		repo.On("ListOverdue", ctx, jobNow).Return([]domain.Rental{{ID: 1}}, nil)
		email.On("SendOverdueReport", ctx, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		assert.NoError(t, newTestRunner(repo, email).reportOverdueRentals(ctx))
	})
}

func TestRunWithRecovery(t *testing.T) {
	jr := newTestRunner(new(overdueRepo), new(MockEmailService))
	assert.NotPanics(t, func() {
		jr.runWithRecovery("boom", func() error { panic("boom") })
	})
}
