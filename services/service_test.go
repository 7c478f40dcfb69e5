package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	rates "github.com/malusev998/exchange-rates"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, date time.Time) (rates.DailyRate, error) {
	args := m.Called(ctx, date)

	return args.Get(0).(rates.DailyRate), args.Error(1)
}

func dateMatcher(expected string) interface{} {
	return mock.MatchedBy(func(date time.Time) bool {
		return date.Format(rates.DateLayout) == expected
	})
}

func fixedNow(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 10, 30, 0, 0, time.UTC)
	}
}

func TestService_Report(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ZeroDays", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := &MockFetcher{}
		service := Service{Fetcher: fetcher, Now: fixedNow(2024, time.January, 1)}

		report, err := service.Report(ctx, 0)

		asserts.Nil(err)
		asserts.NotNil(report)
		asserts.Len(report, 0)
		fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	})

	t.Run("NegativeDays", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := &MockFetcher{}
		service := Service{Fetcher: fetcher}

		report, err := service.Report(ctx, -1)

		asserts.Nil(report)
		asserts.True(errors.Is(err, rates.ErrNegativeDays))
		fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	})

	t.Run("StepsBackAcrossYearBoundary", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := &MockFetcher{}
		expected := []string{"02.01.2024", "01.01.2024", "31.12.2023", "30.12.2023"}

		for _, date := range expected {
			fetcher.On("Fetch", ctx, dateMatcher(date)).Return(rates.DailyRate{Date: date}, nil).Once()
		}

		service := Service{Fetcher: fetcher, Now: fixedNow(2024, time.January, 2)}
		report, err := service.Report(ctx, len(expected))

		asserts.Nil(err)
		asserts.Len(report, len(expected))

		for i, date := range expected {
			asserts.Equal(date, report[i].Date)
		}

		fetcher.AssertExpectations(t)
		fetcher.AssertNumberOfCalls(t, "Fetch", len(expected))
	})

	t.Run("LeapDay", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := &MockFetcher{}
		expected := []string{"01.03.2024", "29.02.2024", "28.02.2024"}

		for _, date := range expected {
			fetcher.On("Fetch", ctx, dateMatcher(date)).Return(rates.DailyRate{Date: date}, nil).Once()
		}

		service := Service{Fetcher: fetcher, Now: fixedNow(2024, time.March, 1)}
		report, err := service.Report(ctx, len(expected))

		asserts.Nil(err)
		asserts.Len(report, len(expected))
		fetcher.AssertExpectations(t)
	})

	t.Run("AbortsOnFailure", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := &MockFetcher{}
		fetchErr := &rates.FetchError{Date: "14.05.2024", StatusCode: 500}

		fetcher.On("Fetch", ctx, dateMatcher("15.05.2024")).Return(rates.DailyRate{Date: "15.05.2024"}, nil).Once()
		fetcher.On("Fetch", ctx, dateMatcher("14.05.2024")).Return(rates.DailyRate{}, fetchErr).Once()

		service := Service{Fetcher: fetcher, Now: fixedNow(2024, time.May, 15)}
		report, err := service.Report(ctx, 5)

		asserts.Nil(report)
		asserts.Equal(fetchErr, err)
		fetcher.AssertExpectations(t)
		fetcher.AssertNumberOfCalls(t, "Fetch", 2)
	})
}
