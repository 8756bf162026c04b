package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestBackendSendsInnermostMessage(t *testing.T) {
	root := errors.New("connection refused")
	err := fmt.Errorf("create appointment: %w", fmt.Errorf("insert: %w", root))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Backend(c, "appointment_create_failed", err)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
	var body HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "connection refused" || body.Code != "appointment_create_failed" {
		t.Fatalf("body = %+v", body)
	}
}

func TestBackendMessageUnwrapped(t *testing.T) {
	if got := BackendMessage(errors.New("timeout")); got != "timeout" {
		t.Fatalf("got %q", got)
	}
}

func TestValidationFirst(t *testing.T) {
	if _, ok := (&ValidationError{}).First(); ok {
		t.Fatal("empty error reported a field")
	}
	var nilErr *ValidationError
	if _, ok := nilErr.First(); ok {
		t.Fatal("nil error reported a field")
	}

	ve := NewFieldError("date", "date_blocked", "Esta data não está disponível para agendamento.")
	ve.Add("time", "slot_taken", "Este horário já está reservado.")
	f, ok := ve.First()
	if !ok || f.Code != "date_blocked" {
		t.Fatalf("first = %+v, %v", f, ok)
	}
}
