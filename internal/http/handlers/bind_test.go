package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocoder89/userhub/internal/http/handlers"
	"github.com/gin-gonic/gin"
)

type bindProbe struct {
	Email string `json:"email" binding:"required,email"`
	Count int    `json:"count"`
}

type bindDetails struct {
	JSON   string `json:"json"`
	Field  string `json:"field"`
	Fields []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	} `json:"fields"`
}

func bindRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()

	r.POST("/probe", func(ctx *gin.Context) {
		var req bindProbe

		if !handlers.BindJSON(ctx, &req) {
			return
		}

		ctx.Status(http.StatusNoContent)
	})

	return r
}

func postProbe(t *testing.T, body string) (*httptest.ResponseRecorder, bindDetails) {
	t.Helper()

	r := bindRouter()

	req := httptest.NewRequest(http.MethodPost, "/probe", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}

	var details bindDetails

	if w.Code != http.StatusNoContent {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("response is not an envelope: %v\n%s", err, w.Body.String())
		}

		if env.Message != "Invalid request body" {
			t.Fatalf("message = %q", env.Message)
		}

		if err := json.Unmarshal(env.Data, &details); err != nil {
			t.Fatalf("details: %v", err)
		}
	}

	return w, details
}

func TestBindJSONAcceptsValidPayload(t *testing.T) {
	w, _ := postProbe(t, `{"email":"jane@gmail.com","count":1}`)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d\n%s", w.Code, w.Body.String())
	}
}

func TestBindJSONReportsValidatorFailures(t *testing.T) {
	w, details := postProbe(t, `{"email":"not-an-email"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}

	if len(details.Fields) != 1 {
		t.Fatalf("fields = %+v", details.Fields)
	}

	if details.Fields[0].Field != "email" || details.Fields[0].Rule != "email" {
		t.Fatalf("unexpected field error %+v", details.Fields[0])
	}
}

func TestBindJSONReportsSyntaxErrors(t *testing.T) {
	w, details := postProbe(t, `{"email":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}

	if details.JSON != "invalid_json_syntax" {
		t.Fatalf("json = %q", details.JSON)
	}
}

func TestBindJSONReportsTypeMismatches(t *testing.T) {
	w, details := postProbe(t, `{"email":"jane@gmail.com","count":"three"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}

	if details.JSON != "invalid_json_type" {
		t.Fatalf("json = %q", details.JSON)
	}

	if details.Field != "count" {
		t.Fatalf("field = %q", details.Field)
	}
}
