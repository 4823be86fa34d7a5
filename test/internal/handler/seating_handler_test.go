package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

func setupSeatingTestRouter(mockService *mocks.MockSeatingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	seatingHandler := handler.NewSeatingHandler(mockService)
	seatingHandler.RegisterRoutes(router)

	return router
}

type createBlocksBody struct {
	NumOfRows    int    `json:"num_of_rows"`
	NumOfColumns int    `json:"num_of_columns"`
	BlockName    string `json:"block_name"`
}

func TestCreateBlocks(t *testing.T) {
	locationID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		blockID := uuid.New()
		mockService.EXPECT().CreateBlocks(mock.Anything, locationID, 5, 8, "Balkon").Return(&model.CreateBlocksResult{
			SeatingBlockID: blockID,
			SeatsCreated:   40,
		}, nil).Once()

		body := createBlocksBody{NumOfRows: 5, NumOfColumns: 8, BlockName: "Balkon"}
		req := createJSONHTTPRequest("POST", "/api/v1/locations/"+locationID.String()+"/blocks", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var result model.CreateBlocksResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		assert.Equal(t, blockID, result.SeatingBlockID)
		assert.Equal(t, 40, result.SeatsCreated)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - invalid location_id", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		body := createBlocksBody{NumOfRows: 5, NumOfColumns: 8, BlockName: "Balkon"}
		req := createJSONHTTPRequest("POST", "/api/v1/locations/not-a-uuid/blocks", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateBlocks")
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/locations/"+locationID.String()+"/blocks", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateBlocks")
	})

	t.Run("Failed - ErrLocationNotFound", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		mockService.EXPECT().CreateBlocks(mock.Anything, locationID, 5, 8, "Balkon").Return(nil, apperrors.ErrLocationNotFound).Once()

		body := createBlocksBody{NumOfRows: 5, NumOfColumns: 8, BlockName: "Balkon"}
		req := createJSONHTTPRequest("POST", "/api/v1/locations/"+locationID.String()+"/blocks", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestBlocksForLocation(t *testing.T) {
	locationID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		mockService.EXPECT().BlocksForLocation(mock.Anything, locationID).Return([]*model.SeatingBlockView{
			{SeatingBlock: model.SeatingBlock{ID: uuid.New(), Name: "A"}},
		}, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/locations/"+locationID.String()+"/seating-blocks", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrSeatingBlockNotFound", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		mockService.EXPECT().BlocksForLocation(mock.Anything, locationID).Return(nil, apperrors.ErrSeatingBlockNotFound).Once()

		req, _ := http.NewRequest("GET", "/api/v1/locations/"+locationID.String()+"/seating-blocks", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestBlocksWithEventAvailability(t *testing.T) {
	locationID := uuid.New()
	eventID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		mockService.EXPECT().BlocksWithEventAvailability(mock.Anything, locationID, eventID).Return([]*model.SeatingBlockView{
			{SeatingBlock: model.SeatingBlock{ID: uuid.New(), Name: "A"}},
		}, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/locations/"+locationID.String()+"/seating-blocks/events/"+eventID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - invalid event_id", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		req, _ := http.NewRequest("GET", "/api/v1/locations/"+locationID.String()+"/seating-blocks/events/xyz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "BlocksWithEventAvailability")
	})

	t.Run("Failed - ErrTicketCategoryNotFound", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		mockService.EXPECT().BlocksWithEventAvailability(mock.Anything, locationID, eventID).Return(nil, apperrors.ErrTicketCategoryNotFound).Once()

		req, _ := http.NewRequest("GET", "/api/v1/locations/"+locationID.String()+"/seating-blocks/events/"+eventID.String(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestEventSeatCapacity(t *testing.T) {
	eventID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		mockService.EXPECT().EventSeatCapacity(mock.Anything, eventID).Return(120, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/events/"+eventID.String()+"/seat-capacity", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			TotalSeats int `json:"total_seats"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 120, body.TotalSeats)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - ErrZeroSeatCapacity", func(t *testing.T) {
		mockService := mocks.NewMockSeatingService(t)
		router := setupSeatingTestRouter(mockService)

		mockService.EXPECT().EventSeatCapacity(mock.Anything, eventID).Return(0, apperrors.ErrZeroSeatCapacity).Once()

		req, _ := http.NewRequest("GET", "/api/v1/events/"+eventID.String()+"/seat-capacity", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})
}
