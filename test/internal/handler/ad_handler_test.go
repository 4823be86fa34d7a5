package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"soly-ticketing/internal/handler"
	"soly-ticketing/internal/model"
	"soly-ticketing/internal/service/mocks"
	apperrors "soly-ticketing/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAdTestRouter(mockService *mocks.MockAdService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	adHandler := handler.NewAdHandler(mockService)
	adHandler.RegisterRoutes(router)

	return router
}

func TestListAdTypes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().ListAdTypes(mock.Anything).Return([]*model.AdType{
			{ID: uuid.New(), Name: "mainPage", DailyCapacity: 10},
			{ID: uuid.New(), Name: "slider", DailyCapacity: 5},
		}, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/ads/types", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var adTypes []model.AdType
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &adTypes))
		assert.Len(t, adTypes, 2)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrInternalServerError", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().ListAdTypes(mock.Anything).Return(nil, apperrors.ErrInternalServerError).Once()

		req, _ := http.NewRequest("GET", "/api/v1/ads/types", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestAvailableDates(t *testing.T) {
	adTypeID := uuid.New()
	eventID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().AvailableDates(mock.Anything, adTypeID, eventID).Return([]time.Time{
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		}, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/ads/available-dates?type_id="+adTypeID.String()+"&event_id="+eventID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			AvailableDates []string `json:"available_dates"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"2026-03-01", "2026-03-02"}, body.AvailableDates)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing query params", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		req, _ := http.NewRequest("GET", "/api/v1/ads/available-dates", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "AvailableDates")
	})

	t.Run("Failed - type_id not a uuid", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		req, _ := http.NewRequest("GET", "/api/v1/ads/available-dates?type_id=abc&event_id="+eventID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "AvailableDates")
	})

	t.Run("Failed - ErrAdTypeNotFound", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().AvailableDates(mock.Anything, adTypeID, eventID).Return(nil, apperrors.ErrAdTypeNotFound).Once()

		req, _ := http.NewRequest("GET", "/api/v1/ads/available-dates?type_id="+adTypeID.String()+"&event_id="+eventID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestAdsOfOrganizer(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().AdsOfOrganizer(mock.Anything, userID).Return([]*model.AdReservation{
			{ID: uuid.New(), Image: "banner.png"},
		}, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/ads/organizers/"+userID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - invalid user_id", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		req, _ := http.NewRequest("GET", "/api/v1/ads/organizers/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "AdsOfOrganizer")
	})

	t.Run("Failed - ErrOrganizerNotFound", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().AdsOfOrganizer(mock.Anything, userID).Return(nil, apperrors.ErrOrganizerNotFound).Once()

		req, _ := http.NewRequest("GET", "/api/v1/ads/organizers/"+userID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestReserveAdDates(t *testing.T) {
	userID := uuid.New()
	adTypeID := uuid.New()
	eventID := uuid.New()

	validRequest := model.ReserveAdDatesRequest{
		OrganizerUserID: userID.String(),
		AdTypeID:        adTypeID.String(),
		EventID:         eventID.String(),
		Image:           "banner.png",
		Dates:           []string{"2026-03-01", "2026-03-02"},
	}

	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("Success - all dates committed", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().ReserveDates(mock.Anything, userID, adTypeID, eventID, "banner.png", []time.Time{day1, day2}).Return([]model.DateReservation{
			{Date: day1, Outcome: model.DateOutcomeCommitted, Reservation: &model.AdReservation{ID: uuid.New()}},
			{Date: day2, Outcome: model.DateOutcomeCommitted, Reservation: &model.AdReservation{ID: uuid.New()}},
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/ads/reservations", validRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Partial - first committed, second rejected still 201", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().ReserveDates(mock.Anything, userID, adTypeID, eventID, "banner.png", []time.Time{day1, day2}).Return([]model.DateReservation{
			{Date: day1, Outcome: model.DateOutcomeCommitted, Reservation: &model.AdReservation{ID: uuid.New()}},
			{Date: day2, Outcome: model.DateOutcomeRejected, Reason: "ad date capacity full"},
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/ads/reservations", validRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Results []model.DateReservation `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Results, 2)
		assert.Equal(t, model.DateOutcomeCommitted, body.Results[0].Outcome)
		assert.Equal(t, model.DateOutcomeRejected, body.Results[1].Outcome)
		mockService.AssertExpectations(t)
	})

	t.Run("Conflict - nothing committed", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().ReserveDates(mock.Anything, userID, adTypeID, eventID, "banner.png", []time.Time{day1, day2}).Return([]model.DateReservation{
			{Date: day1, Outcome: model.DateOutcomeRejected, Reason: "ad date capacity full"},
			{Date: day2, Outcome: model.DateOutcomeSkipped},
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/ads/reservations", validRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/ads/reservations", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ReserveDates")
	})

	t.Run("Failed - org_id not a uuid", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		badRequest := validRequest
		badRequest.OrganizerUserID = "not-a-uuid"

		req := createJSONHTTPRequest("POST", "/api/v1/ads/reservations", badRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ReserveDates")
	})

	t.Run("Failed - unparsable date in date_list", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		badRequest := validRequest
		badRequest.Dates = []string{"03/01/2026"}

		req := createJSONHTTPRequest("POST", "/api/v1/ads/reservations", badRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ReserveDates")
	})

	t.Run("Failed - ErrEventNotFound", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().ReserveDates(mock.Anything, userID, adTypeID, eventID, "banner.png", []time.Time{day1, day2}).Return(nil, apperrors.ErrEventNotFound).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/ads/reservations", validRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrStoreUnavailable", func(t *testing.T) {
		mockService := mocks.NewMockAdService(t)
		router := setupAdTestRouter(mockService)

		mockService.EXPECT().ReserveDates(mock.Anything, userID, adTypeID, eventID, "banner.png", []time.Time{day1, day2}).Return(nil, apperrors.ErrStoreUnavailable).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/ads/reservations", validRequest)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		mockService.AssertExpectations(t)
	})
}
