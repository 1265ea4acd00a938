package handlers_test

import (
	"net/http"
	"testing"
)

func appointmentBody() map[string]any {
	return map[string]any{
		"customer_id":      1,
		"barber_id":        2,
		"service_id":       3,
		"appointment_date": "2026-09-01",
		"appointment_time": "14:30",
	}
}

func TestCreateAppointmentDefaultsToScheduled(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", appointmentBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	payload := payloadOf(t, w)
	if payload["status"] != "scheduled" {
		t.Fatalf("expected status scheduled, got %v", payload["status"])
	}
	if payload["appointment_date"] != "2026-09-01" {
		t.Fatalf("expected date echoed back, got %v", payload["appointment_date"])
	}
}

func TestCreateAppointmentRejectsMissingFields(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", map[string]any{"barber_id": 2})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompleteAppointment(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", appointmentBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("seed appointment: expected 201, got %d", w.Code)
	}
	id := payloadOf(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodPut, idPath("/appointments", id)+"/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if payloadOf(t, w)["status"] != "completed" {
		t.Fatalf("expected status completed, got %s", w.Body.String())
	}

	// persisted, not just echoed
	w = doJSON(t, r, http.MethodGet, idPath("/appointments", id), nil)
	if payloadOf(t, w)["status"] != "completed" {
		t.Fatalf("completed status not persisted: %s", w.Body.String())
	}
}

func TestCompleteAppointmentNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPut, "/appointments/999/complete", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAppointmentUpdateAndDelete(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/appointments", appointmentBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("seed appointment: expected 201, got %d", w.Code)
	}
	id := payloadOf(t, w)["id"].(float64)

	update := appointmentBody()
	update["appointment_time"] = "16:00"
	update["status"] = "rescheduled"

	w = doJSON(t, r, http.MethodPut, idPath("/appointments", id), update)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	payload := payloadOf(t, w)
	if payload["appointment_time"] != "16:00" || payload["status"] != "rescheduled" {
		t.Fatalf("update not applied: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, idPath("/appointments", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}
	if payloadOf(t, w)["appointment_time"] != "16:00" {
		t.Fatalf("expected deleted record in payload, got %s", w.Body.String())
	}

	if w := doJSON(t, r, http.MethodGet, idPath("/appointments", id), nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestAppointmentNotFoundPaths(t *testing.T) {
	r, _ := newTestServer(t)

	if w := doJSON(t, r, http.MethodGet, "/appointments", nil); w.Code != http.StatusNotFound {
		t.Fatalf("empty list: expected 404, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/appointments/999", nil); w.Code != http.StatusNotFound {
		t.Fatalf("get: expected 404, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPut, "/appointments/999", appointmentBody()); w.Code != http.StatusNotFound {
		t.Fatalf("update: expected 404, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, "/appointments/999", nil); w.Code != http.StatusNotFound {
		t.Fatalf("delete: expected 404, got %d", w.Code)
	}
}

// Any number of appointments may share a barber and time slot; there is no
// double-booking guard.
func TestOverlappingAppointmentsAreAccepted(t *testing.T) {
	r, _ := newTestServer(t)

	for i := 0; i < 2; i++ {
		if w := doJSON(t, r, http.MethodPost, "/appointments", appointmentBody()); w.Code != http.StatusCreated {
			t.Fatalf("appointment %d: expected 201, got %d", i, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/appointments", nil)
	if len(payloadListOf(t, w)) != 2 {
		t.Fatalf("expected both overlapping appointments stored: %s", w.Body.String())
	}
}
