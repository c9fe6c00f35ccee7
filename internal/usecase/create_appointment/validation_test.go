package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var validationNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func validFormRequest() *Request {
	return &Request{
		CustomerID:     "cust-1",
		ServiceID:      "svc-1",
		Notes:          "check",
		StartTime:      validationNow.Add(time.Hour),
		IdempotencyKey: "key-1",
	}
}

func TestValidateRequest(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*Request)
		wantField string
	}{
		{"empty notes", func(r *Request) { r.Notes = "" }, "notes"},
		{"whitespace notes", func(r *Request) { r.Notes = "   " }, "notes"},
		{"missing start time", func(r *Request) { r.StartTime = time.Time{} }, "start_time"},
		{"start time in the past", func(r *Request) { r.StartTime = validationNow.Add(-time.Minute) }, "start_time"},
		{"start time exactly now", func(r *Request) { r.StartTime = validationNow }, "start_time"},
		{"missing customer", func(r *Request) { r.CustomerID = "" }, "customer_id"},
		{"missing service", func(r *Request) { r.ServiceID = "" }, "service_id"},
		{"missing idempotency key", func(r *Request) { r.IdempotencyKey = "" }, "idempotency_key"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req := validFormRequest()
			tt.mutate(req)

			fields := validateRequest(req, validationNow)
			assert.Contains(t, fields, tt.wantField)
			assert.NotEmpty(t, fields[tt.wantField])
		})
	}
}

func TestValidateRequestValidForm(t *testing.T) {
	fields := validateRequest(validFormRequest(), validationNow)
	assert.Empty(t, fields)
}

// Повторный вызов с теми же входными данными даёт то же отображение ошибок:
// единственная зависимость от времени — явный параметр now
func TestValidateRequestIsIdempotent(t *testing.T) {
	req := validFormRequest()
	req.Notes = ""
	req.StartTime = validationNow.Add(-time.Hour)

	first := validateRequest(req, validationNow)
	second := validateRequest(req, validationNow)

	assert.Equal(t, first, second)
}
