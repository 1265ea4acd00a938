package handlers_test

import (
	"net/http"
	"testing"
)

func reviewBody(barberID int) map[string]any {
	return map[string]any{
		"customer_id": 1,
		"barber_id":   barberID,
		"rating":      5,
		"review_text": "great cut",
	}
}

func TestReviewCRUD(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/reviews", reviewBody(2))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	id := payloadOf(t, w)["id"].(float64)

	update := reviewBody(2)
	update["rating"] = 1
	update["review_text"] = "changed my mind"

	w = doJSON(t, r, http.MethodPut, idPath("/reviews", id), update)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if payloadOf(t, w)["rating"] != 1.0 {
		t.Fatalf("rating not updated: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, idPath("/reviews", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodGet, idPath("/reviews", id), nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestReviewsByBarber(t *testing.T) {
	r, _ := newTestServer(t)

	for _, barberID := range []int{2, 2, 7} {
		if w := doJSON(t, r, http.MethodPost, "/reviews", reviewBody(barberID)); w.Code != http.StatusCreated {
			t.Fatalf("seed review: expected 201, got %d", w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/reviews/barber/2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := len(payloadListOf(t, w)); got != 2 {
		t.Fatalf("expected 2 reviews for barber 2, got %d", got)
	}

	if w := doJSON(t, r, http.MethodGet, "/reviews/barber/99", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for barber with no reviews, got %d", w.Code)
	}
}

// Unlike the other entities, review routes have no 400 path: a payload the
// binder rejects comes back as 500.
func TestReviewBadPayloadIsInternal(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/reviews", map[string]any{"rating": 5})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReviewNotFoundPaths(t *testing.T) {
	r, _ := newTestServer(t)

	if w := doJSON(t, r, http.MethodGet, "/reviews", nil); w.Code != http.StatusNotFound {
		t.Fatalf("empty list: expected 404, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/reviews/999", nil); w.Code != http.StatusNotFound {
		t.Fatalf("get: expected 404, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPut, "/reviews/999", reviewBody(2)); w.Code != http.StatusNotFound {
		t.Fatalf("update: expected 404, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/reviews/999", nil); w.Code != http.StatusNotFound {
		t.Fatalf("delete: expected 404, got %d", w.Code)
	}
}
