package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rmontufar/usuarios-service/internal/mocks"
	"github.com/rmontufar/usuarios-service/internal/model"
	"github.com/rmontufar/usuarios-service/internal/testutil"
)

func TestAddress_ListByUserID(t *testing.T) {
	t.Run("returns addresses", func(t *testing.T) {
		svc := &mocks.AddressService{}
		svc.On("ListByUserID", mock.Anything, int64(7)).Return([]model.Address{
			{ID: 21, UserID: 7, Street: "Av. Arequipa 123", City: "Lima", PostalCode: "15046"},
		}, nil)

		h := NewAddress(svc, testutil.NewLogger())

		c, rec := newJSONContext(t, http.MethodGet, "/direcciones/7", "")
		c.SetParamNames("user_id")
		c.SetParamValues("7")
		require.NoError(t, h.ListByUserID(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var addresses []model.Address
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &addresses))
		require.Len(t, addresses, 1)
		assert.Equal(t, "Lima", addresses[0].City)
	})

	t.Run("none yields 404", func(t *testing.T) {
		svc := &mocks.AddressService{}
		svc.On("ListByUserID", mock.Anything, int64(99)).Return(nil, model.ErrNotFound)

		h := NewAddress(svc, testutil.NewLogger())

		c, _ := newJSONContext(t, http.MethodGet, "/direcciones/99", "")
		c.SetParamNames("user_id")
		c.SetParamValues("99")
		err := h.ListByUserID(c)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestAddress_Create(t *testing.T) {
	t.Run("created for existing user", func(t *testing.T) {
		svc := &mocks.AddressService{}
		svc.On("Create", mock.Anything, model.Address{
			UserID:     7,
			Street:     "Av. Arequipa 123",
			City:       "Lima",
			PostalCode: "15046",
		}).Return(model.Address{ID: 21, UserID: 7, Street: "Av. Arequipa 123", City: "Lima", PostalCode: "15046"}, nil)

		h := NewAddress(svc, testutil.NewLogger())

		c, rec := newJSONContext(t, http.MethodPost, "/direcciones",
			`{"user_id":7,"street":"Av. Arequipa 123","city":"Lima","postal_code":"15046"}`)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var address model.Address
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &address))
		assert.Equal(t, int64(21), address.ID)
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		svc := &mocks.AddressService{}
		svc.On("Create", mock.Anything, mock.Anything).Return(model.Address{}, model.ErrNotFound)

		h := NewAddress(svc, testutil.NewLogger())

		c, _ := newJSONContext(t, http.MethodPost, "/direcciones",
			`{"user_id":99,"street":"x","city":"y","postal_code":"z"}`)
		err := h.Create(c)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestAddress_Update(t *testing.T) {
	t.Run("updates city and postal code", func(t *testing.T) {
		svc := &mocks.AddressService{}
		svc.On("Update", mock.Anything, model.Address{
			ID:         21,
			UserID:     7,
			Street:     "Av. Arequipa 123",
			City:       "Cusco",
			PostalCode: "08001",
		}).Return(model.Address{ID: 21, UserID: 7, Street: "Av. Arequipa 123", City: "Cusco", PostalCode: "08001"}, nil)

		h := NewAddress(svc, testutil.NewLogger())

		c, rec := newJSONContext(t, http.MethodPut, "/direcciones/21",
			`{"user_id":7,"street":"Av. Arequipa 123","city":"Cusco","postal_code":"08001"}`)
		c.SetParamNames("id")
		c.SetParamValues("21")
		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var address model.Address
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &address))
		assert.Equal(t, "Cusco", address.City)
		assert.Equal(t, "Av. Arequipa 123", address.Street)
		assert.Equal(t, int64(7), address.UserID)
	})

	t.Run("missing address or user yields 404", func(t *testing.T) {
		svc := &mocks.AddressService{}
		svc.On("Update", mock.Anything, mock.Anything).Return(model.Address{}, model.ErrNotFound)

		h := NewAddress(svc, testutil.NewLogger())

		c, _ := newJSONContext(t, http.MethodPut, "/direcciones/99",
			`{"user_id":7,"street":"x","city":"y","postal_code":"z"}`)
		c.SetParamNames("id")
		c.SetParamValues("99")
		err := h.Update(c)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestAddress_Delete(t *testing.T) {
	t.Run("returns confirmation message", func(t *testing.T) {
		svc := &mocks.AddressService{}
		svc.On("Delete", mock.Anything, int64(21)).Return(nil)

		h := NewAddress(svc, testutil.NewLogger())

		c, rec := newJSONContext(t, http.MethodDelete, "/direcciones/21", "")
		c.SetParamNames("id")
		c.SetParamValues("21")
		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"address deleted"}`, rec.Body.String())
	})

	t.Run("missing address yields 404", func(t *testing.T) {
		svc := &mocks.AddressService{}
		svc.On("Delete", mock.Anything, int64(99)).Return(model.ErrNotFound)

		h := NewAddress(svc, testutil.NewLogger())

		c, _ := newJSONContext(t, http.MethodDelete, "/direcciones/99", "")
		c.SetParamNames("id")
		c.SetParamValues("99")
		err := h.Delete(c)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}
