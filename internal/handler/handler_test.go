package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/ledger"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/model"
	"github.com/Shivanand-hulikatti/hotel-reservation-ledger/internal/service"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := service.NewReservationService(ledger.New("Hotel Kame House"), nil, zap.NewNop())
	srv := httptest.NewServer(NewRouter(NewReservationHandler(svc), zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

const gokuVegeta = `{"clients":[{"name":"Goku","age":30,"height":175},{"name":"Vegeta","age":35,"height":180}],"duration":3,"breakfast":true}`

func TestReservationLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/reservations", "")
	var empty []model.Reservation
	decode(t, resp, &empty)
	if resp.StatusCode != http.StatusOK || empty == nil || len(empty) != 0 {
		t.Fatalf("empty list: status %d, body %v", resp.StatusCode, empty)
	}

	resp = do(t, http.MethodPost, srv.URL+"/reservations", gokuVegeta)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	var created model.Reservation
	decode(t, resp, &created)
	if created.ID != 1 || created.HotelName != "Hotel Kame House" || len(created.Clients) != 2 {
		t.Errorf("got %+v", created)
	}

	resp = do(t, http.MethodGet, srv.URL+"/reservations/1/price", "")
	var price model.PriceResponse
	decode(t, resp, &price)
	if resp.StatusCode != http.StatusOK || price.Price != 150.0 || price.ReservationID != 1 {
		t.Errorf("price: status %d, body %+v", resp.StatusCode, price)
	}

	resp = do(t, http.MethodPost, srv.URL+"/reservations",
		`{"clients":[{"name":"Goku","age":30,"height":175},{"name":"Krillin","age":30,"height":153}],"duration":1}`)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate client: got status %d, want 409", resp.StatusCode)
	}

	resp = do(t, http.MethodDelete, srv.URL+"/reservations/1", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("cancel: got status %d, want 204", resp.StatusCode)
	}
	resp = do(t, http.MethodDelete, srv.URL+"/reservations/1", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second cancel: got status %d, want 404", resp.StatusCode)
	}
	resp = do(t, http.MethodGet, srv.URL+"/reservations/1", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get cancelled: got status %d, want 404", resp.StatusCode)
	}
}

func TestBadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"malformed body", http.MethodPost, "/reservations", `{"clients":`},
		{"unknown field", http.MethodPost, "/reservations", `{"guests":[]}`},
		{"non-numeric id", http.MethodGet, "/reservations/abc", ""},
		{"non-numeric cancel", http.MethodDelete, "/reservations/abc", ""},
		{"non-numeric price", http.MethodGet, "/reservations/abc/price", ""},
		{"malformed quote", http.MethodPost, "/quotes", `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, srv.URL+tt.path, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("got status %d, want 400", resp.StatusCode)
			}
			var e model.ErrorResponse
			decode(t, resp, &e)
			if e.Error == "" {
				t.Error("missing error message")
			}
		})
	}
}

func TestQuote(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/quotes", gokuVegeta)
	var price model.PriceResponse
	decode(t, resp, &price)
	if resp.StatusCode != http.StatusOK || price.Price != 150.0 || price.ReservationID != 0 {
		t.Errorf("status %d, body %+v", resp.StatusCode, price)
	}

	resp = do(t, http.MethodGet, srv.URL+"/reservations", "")
	var list []model.Reservation
	decode(t, resp, &list)
	if len(list) != 0 {
		t.Errorf("quote booked a reservation: %+v", list)
	}
}

func TestEmptyReservationAccepted(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/reservations", `{"clients":[],"duration":0}`)
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("got status %d, want 201", resp.StatusCode)
	}
}

func TestHealthAndCORS(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health: got status %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q", got)
	}

	resp = do(t, http.MethodOptions, srv.URL+"/reservations", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("preflight: got status %d, want 204", resp.StatusCode)
	}
}
