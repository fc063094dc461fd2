package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/core/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/handlers"
	"github.com/SscSPs/currency_converter_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ConverterService ---
type MockConverterService struct {
	mock.Mock
}

func (m *MockConverterService) Form(ctx context.Context) domain.ConverterForm {
	args := m.Called(ctx)
	return args.Get(0).(domain.ConverterForm)
}

func (m *MockConverterService) EditField(ctx context.Context, edit domain.FieldEdited) (domain.ConverterForm, error) {
	args := m.Called(ctx, edit)
	return args.Get(0).(domain.ConverterForm), args.Error(1)
}

func (m *MockConverterService) Swap(ctx context.Context) (domain.ConverterForm, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ConverterForm), args.Error(1)
}

func (m *MockConverterService) Convert(ctx context.Context) (*domain.ConversionRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionRecord), args.Error(1)
}

func (m *MockConverterService) LoadReferral(ctx context.Context, record domain.ConversionRecord) {
	m.Called(ctx, record)
}

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) All(ctx context.Context) []domain.ConversionRecord {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ConversionRecord)
}

func (m *MockHistoryService) Find(ctx context.Context, id int64) (*domain.ConversionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionRecord), args.Error(1)
}

func (m *MockHistoryService) Events(ctx context.Context) []domain.HistoryEvent {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.HistoryEvent)
}

func (m *MockHistoryService) ChartPoints(ctx context.Context) []domain.ChartPoint {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ChartPoint)
}

func (m *MockHistoryService) Append(ctx context.Context, record domain.ConversionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryService) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHistoryService) SelectWindow(ctx context.Context, window domain.TimeWindow) error {
	args := m.Called(ctx, window)
	return args.Error(0)
}

func (m *MockHistoryService) SelectedWindow(ctx context.Context) domain.TimeWindow {
	args := m.Called(ctx)
	return args.Get(0).(domain.TimeWindow)
}

// --- Test Suite ---
type ConverterHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockConverter *MockConverterService
	mockHistory   *MockHistoryService
}

func (suite *ConverterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockConverter = new(MockConverterService)
	suite.mockHistory = new(MockHistoryService)

	cfg := &config.Config{
		IsProduction:       true,
		RateLimitPerMinute: 1000,
	}
	container := &portssvc.ServiceContainer{
		History:    suite.mockHistory,
		Statistics: services.NewStatisticsService(),
		Converter:  suite.mockConverter,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *ConverterHandlerTestSuite) perform(method, path, body string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ConverterHandlerTestSuite) TestHealth() {
	w := suite.perform(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *ConverterHandlerTestSuite) TestGetForm() {
	suite.mockConverter.On("Form", mock.Anything).Return(domain.ConverterForm{
		State:  domain.FormEditable,
		Amount: "100",
		From:   "USD",
		To:     "EUR",
	}).Once()

	w := suite.perform(http.MethodGet, "/api/v1/converter", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConverterFormResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("editable", resp.State)
	suite.Equal("USD", resp.From)
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *ConverterHandlerTestSuite) TestEditField_UnknownFieldRejected() {
	w := suite.perform(http.MethodPatch, "/api/v1/converter/fields", `{"field":"rate","value":"1"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConverter.AssertNotCalled(suite.T(), "EditField", mock.Anything, mock.Anything)
}

func (suite *ConverterHandlerTestSuite) TestEditField_Success() {
	suite.mockConverter.On("EditField", mock.Anything, domain.FieldEdited{
		Field: domain.FieldAmount,
		Value: "-5",
	}).Return(domain.ConverterForm{State: domain.FormEditable, Amount: "0"}, nil).Once()

	w := suite.perform(http.MethodPatch, "/api/v1/converter/fields", `{"field":"amount","value":"-5"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConverterFormResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("0", resp.Amount)
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *ConverterHandlerTestSuite) TestEditField_DisabledFormRejected() {
	suite.mockConverter.On("EditField", mock.Anything, mock.Anything).
		Return(domain.ConverterForm{State: domain.FormDisabled}, apperrors.ErrValidation).Once()

	w := suite.perform(http.MethodPatch, "/api/v1/converter/fields", `{"field":"amount","value":"5"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ConverterHandlerTestSuite) TestConvert_Success() {
	record := &domain.ConversionRecord{
		ID:           42,
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Amount:       100,
		Result:       "85.000",
	}
	suite.mockConverter.On("Convert", mock.Anything).Return(record, nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/converter/convert", "")

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("85.000", resp.Result)
	suite.Equal(int64(42), resp.Record.ID)
}

func (suite *ConverterHandlerTestSuite) TestConvert_InvalidFormRejected() {
	suite.mockConverter.On("Convert", mock.Anything).Return(nil, apperrors.ErrValidation).Once()

	w := suite.perform(http.MethodPost, "/api/v1/converter/convert", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ConverterHandlerTestSuite) TestListHistory_UnknownWindowRejected() {
	w := suite.perform(http.MethodGet, "/api/v1/history?window=lastCentury", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ConverterHandlerTestSuite) TestListHistory_ExplicitWindowPersisted() {
	suite.mockHistory.On("SelectWindow", mock.Anything, domain.WindowAllTime).Return(nil).Once()
	suite.mockHistory.On("All", mock.Anything).Return([]domain.ConversionRecord{{ID: 1, CreationDate: "20/06/2024"}}).Once()

	w := suite.perform(http.MethodGet, "/api/v1/history?window=allTime", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.HistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("allTime", resp.Window)
	suite.Len(resp.Records, 1)
	suite.mockHistory.AssertExpectations(suite.T())
}

func (suite *ConverterHandlerTestSuite) TestReferral_NotFound() {
	suite.mockHistory.On("Find", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.perform(http.MethodPost, "/api/v1/history/99/referral", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockConverter.AssertNotCalled(suite.T(), "LoadReferral", mock.Anything, mock.Anything)
}

func (suite *ConverterHandlerTestSuite) TestReferral_Success() {
	record := &domain.ConversionRecord{ID: 7, FromCurrency: "USD", ToCurrency: "EUR", Amount: 100}
	suite.mockHistory.On("Find", mock.Anything, int64(7)).Return(record, nil).Once()
	suite.mockConverter.On("LoadReferral", mock.Anything, *record).Once()

	w := suite.perform(http.MethodPost, "/api/v1/history/7/referral", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *ConverterHandlerTestSuite) TestStatistics_LocalizedLabels() {
	suite.mockHistory.On("SelectedWindow", mock.Anything).Return(domain.WindowAllTime).Once()
	suite.mockHistory.On("All", mock.Anything).Return([]domain.ConversionRecord{
		{ID: 1, CreationDate: "20/06/2024", PureExchangeRate: 0.85},
	}).Once()

	w := suite.perform(http.MethodGet, "/api/v1/statistics?lang=de", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatisticsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Statistics, 3)
	suite.Equal("Lowest", resp.Statistics[0].Name)
	suite.Equal("Niedrigster", resp.Statistics[0].Label)
	suite.Equal(0.85, resp.Statistics[0].Summary)
}

func TestConverterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ConverterHandlerTestSuite))
}
