package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock HistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) LoadHistory(ctx context.Context) ([]domain.ConversionRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConversionRecord), args.Error(1)
}

func (m *MockHistoryRepository) SaveHistory(ctx context.Context, records []domain.ConversionRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) SaveTimeWindow(ctx context.Context, window domain.TimeWindow) error {
	args := m.Called(ctx, window)
	return args.Error(0)
}

func (m *MockPreferenceRepository) LoadTimeWindow(ctx context.Context) (domain.TimeWindow, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.TimeWindow), args.Error(1)
}

// --- Test Suite ---
type HistoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockHistoryRepository
	mockPref *MockPreferenceRepository
	logger   *slog.Logger
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockHistoryRepository)
	suite.mockPref = new(MockPreferenceRepository)
	suite.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (suite *HistoryServiceTestSuite) newService(stored []domain.ConversionRecord) *services.HistoryService {
	suite.mockRepo.On("LoadHistory", mock.Anything).Return(stored, nil).Once()
	return services.NewHistoryService(context.Background(), suite.mockRepo, suite.mockPref, suite.logger)
}

// --- Test Cases ---

func (suite *HistoryServiceTestSuite) TestNew_RehydratesFromStore() {
	stored := []domain.ConversionRecord{{ID: 2}, {ID: 1}}
	service := suite.newService(stored)

	records := service.All(context.Background())

	suite.Require().Len(records, 2)
	suite.Equal(int64(2), records[0].ID)
}

func (suite *HistoryServiceTestSuite) TestNew_LoadFailureStartsEmpty() {
	suite.mockRepo.On("LoadHistory", mock.Anything).Return(nil, apperrors.ErrStorage).Once()

	service := services.NewHistoryService(context.Background(), suite.mockRepo, suite.mockPref, suite.logger)

	suite.Empty(service.All(context.Background()))
}

func (suite *HistoryServiceTestSuite) TestAppend_PrependsAndPersists() {
	service := suite.newService([]domain.ConversionRecord{{ID: 1}})
	suite.mockRepo.On("SaveHistory", mock.Anything, mock.MatchedBy(func(records []domain.ConversionRecord) bool {
		return len(records) == 2 && records[0].ID == 2
	})).Return(nil).Once()

	err := service.Append(context.Background(), domain.ConversionRecord{ID: 2})

	suite.Require().NoError(err)
	records := service.All(context.Background())
	suite.Equal(int64(2), records[0].ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestAppend_PersistFailureKeepsRecordInMemory() {
	service := suite.newService(nil)
	suite.mockRepo.On("SaveHistory", mock.Anything, mock.Anything).Return(apperrors.ErrStorage).Once()

	err := service.Append(context.Background(), domain.ConversionRecord{ID: 7})

	suite.Require().Error(err)
	records := service.All(context.Background())
	suite.Require().Len(records, 1)
	suite.Equal(int64(7), records[0].ID)
}

func (suite *HistoryServiceTestSuite) TestRemove_DeletesAndPersists() {
	service := suite.newService([]domain.ConversionRecord{{ID: 2}, {ID: 1}})
	suite.mockRepo.On("SaveHistory", mock.Anything, mock.MatchedBy(func(records []domain.ConversionRecord) bool {
		return len(records) == 1 && records[0].ID == 1
	})).Return(nil).Once()

	err := service.Remove(context.Background(), 2)

	suite.Require().NoError(err)
	suite.Len(service.All(context.Background()), 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestRemove_AbsentIDIsNoOp() {
	service := suite.newService([]domain.ConversionRecord{{ID: 1}})

	err := service.Remove(context.Background(), 42)

	suite.Require().NoError(err)
	suite.Len(service.All(context.Background()), 1)
	// No persistence write happens for a no-op removal.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveHistory", mock.Anything, mock.Anything)
}

func (suite *HistoryServiceTestSuite) TestFind() {
	service := suite.newService([]domain.ConversionRecord{{ID: 1, FromCurrency: "USD"}})

	record, err := service.Find(context.Background(), 1)
	suite.Require().NoError(err)
	suite.Equal("USD", record.FromCurrency)

	_, err = service.Find(context.Background(), 99)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *HistoryServiceTestSuite) TestEventsAndChartPoints() {
	service := suite.newService([]domain.ConversionRecord{{
		ID:           1,
		Date:         "20/06/2024\n@15:04:05",
		CreationDate: "20/06/2024",
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Amount:       100,
	}})

	events := service.Events(context.Background())
	suite.Require().Len(events, 1)
	suite.Equal("Converted an amount of 100 from USD to EUR", events[0].Event)

	points := service.ChartPoints(context.Background())
	suite.Require().Len(points, 1)
	suite.Equal("20/06/2024\n@15:04:05", points[0].X)
	suite.Equal("Converted an amount of 100 from USD to EUR", points[0].Y)
}

func (suite *HistoryServiceTestSuite) TestWindowPreference() {
	service := suite.newService(nil)
	suite.mockPref.On("SaveTimeWindow", mock.Anything, domain.WindowSevenDays).Return(nil).Once()
	suite.mockPref.On("LoadTimeWindow", mock.Anything).Return(domain.WindowSevenDays, nil).Once()

	err := service.SelectWindow(context.Background(), domain.WindowSevenDays)
	suite.Require().NoError(err)

	suite.Equal(domain.WindowSevenDays, service.SelectedWindow(context.Background()))
	suite.mockPref.AssertExpectations(suite.T())
}

func (suite *HistoryServiceTestSuite) TestSelectedWindow_LoadFailureDefaultsToAllTime() {
	service := suite.newService(nil)
	suite.mockPref.On("LoadTimeWindow", mock.Anything).Return(domain.WindowAllTime, apperrors.ErrStorage).Once()

	suite.Equal(domain.WindowAllTime, service.SelectedWindow(context.Background()))
}

func TestHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
