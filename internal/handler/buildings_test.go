package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"buildings-api/internal/buildings"
	"buildings-api/internal/models"
	"buildings-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBuildingService is a mock implementation of the BuildingService interface
type MockBuildingService struct {
	mock.Mock
}

func (m *MockBuildingService) List(state buildings.ViewState) models.Page[models.BuildingCard] {
	args := m.Called(state)
	return args.Get(0).(models.Page[models.BuildingCard])
}

func (m *MockBuildingService) Building(id string) (models.BuildingRecord, error) {
	args := m.Called(id)
	return args.Get(0).(models.BuildingRecord), args.Error(1)
}

func (m *MockBuildingService) BuildingByTitle(title string) (models.BuildingRecord, error) {
	args := m.Called(title)
	return args.Get(0).(models.BuildingRecord), args.Error(1)
}

func TestBuildingHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	page := models.Page[models.BuildingCard]{
		Items:      []models.BuildingCard{{ID: "oodi", Name: "Oodi", City: "Helsinki"}},
		Page:       2,
		PageSize:   12,
		TotalItems: 13,
		TotalPages: 2,
		Pages:      []int{1, 2},
	}

	tests := []struct {
		name           string
		query          string
		expectedState  *buildings.ViewState
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "defaults",
			expectedState:  &buildings.ViewState{Direction: buildings.Ascending, PageSize: 6, Page: 1},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "all parameters",
			query:          "q=oodi&sort=desc&pageSize=12&page=2",
			expectedState:  &buildings.ViewState{Search: "oodi", Direction: buildings.Descending, PageSize: 12, Page: 2},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "out of range page is passed through for clamping",
			query:          "page=-3",
			expectedState:  &buildings.ViewState{Direction: buildings.Ascending, PageSize: 6, Page: -3},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid sort",
			query:          "sort=up",
			expectedStatus: http.StatusBadRequest,
			expectedError:  `invalid sort direction "up"`,
		},
		{
			name:           "page size not offered",
			query:          "pageSize=10",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "pageSize must be one of [6 12 24]",
		},
		{
			name:           "non numeric page",
			query:          "page=two",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid page format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockBuildingService)
			handler := NewBuildingHandler(mockSvc)
			if tt.expectedState != nil {
				mockSvc.On("List", *tt.expectedState).Return(page)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/buildings?"+tt.query, nil)

			// Execute
			handler.List(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var actual models.Page[models.BuildingCard]
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actual))
				assert.Equal(t, page, actual)
			} else {
				var actual map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actual))
				assert.Equal(t, tt.expectedError, actual["error"])
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestBuildingHandler_Building(t *testing.T) {
	gin.SetMode(gin.TestMode)

	record := models.BuildingRecord{
		ID:                  "oodi",
		ProductInformations: []models.ProductInformation{{Name: "Oodi"}},
		PostalAddresses:     []models.PostalAddress{{StreetName: "Töölönlahdenkatu 4", City: "Helsinki", PostalCode: "00100"}},
	}

	tests := []struct {
		name           string
		id             string
		mockRecord     models.BuildingRecord
		mockError      error
		expectedStatus int
	}{
		{name: "found", id: "oodi", mockRecord: record, expectedStatus: http.StatusOK},
		{name: "not found", id: "kiasma", mockError: service.ErrBuildingNotFound, expectedStatus: http.StatusNotFound},
		{name: "unexpected error", id: "broken", mockError: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockBuildingService)
			mockSvc.On("Building", tt.id).Return(tt.mockRecord, tt.mockError)
			handler := NewBuildingHandler(mockSvc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/buildings/"+tt.id, nil)
			c.Params = gin.Params{{Key: "id", Value: tt.id}}

			handler.Building(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var detail BuildingDetail
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
				assert.Equal(t, "Oodi", detail.Card.Name)
				assert.Equal(t, "Töölönlahdenkatu 4", detail.Card.StreetName)
				assert.Equal(t, record, detail.Record)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestBuildingHandler_BuildingByTitle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing title", func(t *testing.T) {
		mockSvc := new(MockBuildingService)
		handler := NewBuildingHandler(mockSvc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/markers/building", nil)

		handler.BuildingByTitle(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"missing required query parameter 'title'"}`, w.Body.String())
	})

	t.Run("found by marker title", func(t *testing.T) {
		record := models.BuildingRecord{ID: "didrichsen", ProductImages: []models.ProductImage{{Copyright: "Didrichsen archives"}}}
		mockSvc := new(MockBuildingService)
		mockSvc.On("BuildingByTitle", "Didrichsenin taidemuseo").Return(record, nil)
		handler := NewBuildingHandler(mockSvc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/markers/building?title=Didrichsenin+taidemuseo", nil)

		handler.BuildingByTitle(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var detail BuildingDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.Equal(t, "didrichsen", detail.Card.ID)
		assert.Equal(t, "Didrichsenin taidemuseo", detail.Card.Name)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown title", func(t *testing.T) {
		mockSvc := new(MockBuildingService)
		mockSvc.On("BuildingByTitle", "Kiasma").Return(models.BuildingRecord{}, service.ErrBuildingNotFound)
		handler := NewBuildingHandler(mockSvc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/markers/building?title=Kiasma", nil)

		handler.BuildingByTitle(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"building not found"}`, w.Body.String())
	})
}
