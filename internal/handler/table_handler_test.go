package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// withID attaches a chi {id} URL parameter to the request.
func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleMenu() []model.MenuItem {
	return []model.MenuItem{
		{ID: 1, Name: "Dal Makhani Combo", Price: 180, Category: "Combo", Available: true},
		{ID: 2, Name: "Veg Thali", Price: 250, Category: "Thali", Available: true},
	}
}

func TestMenuHandler_List(t *testing.T) {
	mockService := new(MockMenuService)
	mockService.On("List", mock.Anything).Return(sampleMenu(), nil)

	h := NewMenuHandler(mockService, validation.MustNew(), zerolog.Nop())
	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/menu-items", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var items []model.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	assert.Equal(t, "Dal Makhani Combo", items[0].Name)
}

func TestMenuHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectService  bool
		expectedInput  model.MenuItemInput
		mockError      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Numeric string price",
			body:           `{"name":"Veg Thali","price":"250","category":"Thali"}`,
			expectService:  true,
			expectedInput:  model.MenuItemInput{Name: "Veg Thali", Price: 250, Category: "Thali"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Number price",
			body:           `{"name":"Veg Thali","price":250,"category":"Thali"}`,
			expectService:  true,
			expectedInput:  model.MenuItemInput{Name: "Veg Thali", Price: 250, Category: "Thali"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing name",
			body:           `{"price":250}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Validation failed",
		},
		{
			name:           "Non-numeric price",
			body:           `{"name":"Veg Thali","price":"two fifty"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Validation failed",
		},
		{
			name:           "Store constraint",
			body:           `{"name":"Veg Thali","price":250}`,
			expectService:  true,
			expectedInput:  model.MenuItemInput{Name: "Veg Thali", Price: 250},
			mockError:      fmt.Errorf("failed to create menu item: %w", model.NewDomainError(model.ErrCodeConstraint, `duplicate key value violates unique constraint "menu_items_name_key"`)),
			expectedStatus: http.StatusBadRequest,
			expectedError:  `duplicate key value violates unique constraint "menu_items_name_key"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockMenuService)
			if tt.expectService {
				if tt.mockError != nil {
					mockService.On("Create", mock.Anything, tt.expectedInput).Return(nil, tt.mockError)
				} else {
					mockService.On("Create", mock.Anything, tt.expectedInput).Return(sampleMenu(), nil)
				}
			}

			h := NewMenuHandler(mockService, validation.MustNew(), zerolog.Nop())
			w := httptest.NewRecorder()
			h.Create(w, httptest.NewRequest(http.MethodPost, "/api/menu-items", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w).Error)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestMenuHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		parsedID       int64
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{name: "Success", id: "2", parsedID: 2, expectService: true, expectedStatus: http.StatusOK},
		{name: "Missing row", id: "99", parsedID: 99, expectService: true, mockError: model.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "Non-numeric id", id: "abc", expectedStatus: http.StatusBadRequest},
		{name: "Zero id", id: "0", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockMenuService)
			input := model.MenuItemInput{Name: "Veg Thali", Price: 260}
			if tt.expectService {
				if tt.mockError != nil {
					mockService.On("Update", mock.Anything, tt.parsedID, input).Return(nil, tt.mockError)
				} else {
					mockService.On("Update", mock.Anything, tt.parsedID, input).Return(sampleMenu(), nil)
				}
			}

			h := NewMenuHandler(mockService, validation.MustNew(), zerolog.Nop())
			req := httptest.NewRequest(http.MethodPut, "/api/menu-items/"+tt.id, bytes.NewBufferString(`{"name":"Veg Thali","price":260}`))
			w := httptest.NewRecorder()

			h.Update(w, withID(req, tt.id))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestMenuHandler_Delete(t *testing.T) {
	t.Run("Returns the re-listed table", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Delete", mock.Anything, int64(1)).Return(sampleMenu()[1:], nil)

		h := NewMenuHandler(mockService, validation.MustNew(), zerolog.Nop())
		w := httptest.NewRecorder()
		h.Delete(w, withID(httptest.NewRequest(http.MethodDelete, "/api/menu-items/1", nil), "1"))

		require.Equal(t, http.StatusOK, w.Code)

		var items []model.MenuItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, int64(2), items[0].ID)
	})

	t.Run("Unexpected store failure", func(t *testing.T) {
		mockService := new(MockMenuService)
		mockService.On("Delete", mock.Anything, int64(1)).Return(nil, errors.New("failed to delete menu item: conn closed"))

		h := NewMenuHandler(mockService, validation.MustNew(), zerolog.Nop())
		w := httptest.NewRecorder()
		h.Delete(w, withID(httptest.NewRequest(http.MethodDelete, "/api/menu-items/1", nil), "1"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", decodeError(t, w).Error)
	})
}

func TestMenuHandler_Stats(t *testing.T) {
	mockService := new(MockMenuService)
	mockService.On("Stats", mock.Anything).Return(&model.MenuStats{
		Total:      2,
		Available:  2,
		ByCategory: map[string]int{"Combo": 1, "Thali": 1},
	}, nil)

	h := NewMenuHandler(mockService, validation.MustNew(), zerolog.Nop())
	w := httptest.NewRecorder()
	h.Stats(w, httptest.NewRequest(http.MethodGet, "/api/menu-items/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":2,"available":2,"unavailable":0,"by_category":{"Combo":1,"Thali":1}}`, w.Body.String())
}

func TestSubscriberHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"customer_name":"Rahul Sharma","plan_type":"Monthly","start_date":"2024-01-01","end_date":"2024-01-31"}`,
			expectService:  true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Malformed date",
			body:           `{"customer_name":"Rahul Sharma","start_date":"01/01/2024"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing customer name",
			body:           `{"plan_type":"Monthly"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockSubscriberService)
			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.MatchedBy(func(in model.SubscriberInput) bool {
					return in.CustomerName == "Rahul Sharma" && in.StartDate == "2024-01-01"
				})).Return([]model.Subscriber{{ID: 1, CustomerName: "Rahul Sharma", DeliveryStatus: "Active"}}, nil)
			}

			h := NewSubscriberHandler(mockService, validation.MustNew(), zerolog.Nop())
			w := httptest.NewRecorder()
			h.Create(w, httptest.NewRequest(http.MethodPost, "/api/subscribers", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				resp := decodeError(t, w)
				assert.Equal(t, model.ErrCodeValidation, resp.Code)
				assert.NotEmpty(t, resp.Details)
				mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}
