package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turkeypos/internal/pos/domain"
	"turkeypos/internal/pos/ports"
)

func TestGetMenu(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/menu/", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		io.WriteString(w, `[
			{"id":"c1","name":"Burgers","products":[
				{"id":"p1","name":"Classic Burger","base_price":120,"options":[
					{"id":"o1","name":"No Onion","price_delta":0,"is_required":false},
					{"id":"o2","name":"Size: Large","price_delta":30,"is_required":true}
				]}
			]}
		]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, Credentials{Token: "tok-123"})
	menu, err := c.GetMenu(context.Background())
	require.NoError(t, err)

	require.Len(t, menu, 1)
	require.Len(t, menu[0].Products, 1)
	p := menu[0].Products[0]
	assert.Equal(t, 120.0, p.BasePrice)
	require.Len(t, p.Options, 2)
	assert.True(t, p.Options[1].IsRequired)
	assert.Equal(t, 30.0, p.Options[1].PriceDelta)
}

func TestCreateOrderPayloadShape(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		io.WriteString(w, `{"id":"ord-9","table_number":"7","total_price":450,"status":"pending","created_at":"2026-08-31T12:00:00Z","items":[]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, Credentials{})
	conf, err := c.CreateOrder(context.Background(), domain.OrderRequest{
		TableNumber: "7",
		OrderType:   domain.OrderTypeDineIn,
		Items: []domain.OrderRequestItem{
			{ProductID: "p1", Quantity: 3, OptionIDs: []string{"o2"}},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "ord-9", conf.OrderID)
	assert.Equal(t, 450.0, conf.TotalPrice)

	assert.Equal(t, "7", captured["table_number"])
	assert.Equal(t, "dine_in", captured["order_type"])

	items := captured["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "p1", first["product_id"])
	assert.Equal(t, 3.0, first["quantity"])
	assert.Equal(t, []any{"o2"}, first["option_ids"])

	// Prices must never be on the wire; the server recomputes them.
	for _, raw := range items {
		item := raw.(map[string]any)
		assert.NotContains(t, item, "unit_price")
		assert.NotContains(t, item, "base_price")
		assert.NotContains(t, item, "price")
	}

	second := items[1].(map[string]any)
	assert.Equal(t, []any{}, second["option_ids"], "nil option list serializes as an empty array")
}

func TestCreateOrderUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail":"Product p9 not found"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, Credentials{})
	_, err := c.CreateOrder(context.Background(), domain.OrderRequest{
		TableNumber: "1",
		OrderType:   domain.OrderTypeDineIn,
		Items:       []domain.OrderRequestItem{{ProductID: "p9", Quantity: 1}},
	})
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.Contains(t, upstream.Detail, "p9")
}

func TestActiveOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/active", r.URL.Path)
		io.WriteString(w, `[
			{"id":"ord-1","table_number":"4","total_price":150,"status":"pending","created_at":"2026-08-31T12:00:00Z",
			 "items":[{"product_name":"Classic Burger","quantity":1,"unit_price":150,
			           "selected_options":[{"option_name":"Size: Large","price_delta":30}]}]}
		]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, Credentials{})
	orders, err := c.ActiveOrders(context.Background())
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, "4", orders[0].TableNumber)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Size: Large", orders[0].Items[0].SelectedOptions[0].OptionName)
}

func TestCompleteAndDeleteOrder(t *testing.T) {
	var gotMethod, gotPath, gotStatus string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		if r.Method == http.MethodPatch {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gotStatus = body["status"]
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, Credentials{})

	require.NoError(t, c.CompleteOrder(context.Background(), "ord-1"))
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/orders/ord-1/status", gotPath)
	assert.Equal(t, "completed", gotStatus)

	require.NoError(t, c.DeleteOrder(context.Background(), "ord-2"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/orders/ord-2", gotPath)
}

func TestSalesQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sales/stats", r.URL.Path)
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-08-31", r.URL.Query().Get("end_date"))
		assert.Equal(t, "s1", r.URL.Query().Get("store_id"))
		io.WriteString(w, `{"stats":{"total_orders":10}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, Credentials{})
	raw, err := c.Stats(context.Background(), ports.StatsQuery{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-31",
		StoreID:   "s1",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"stats":{"total_orders":10}}`, string(raw))
}
