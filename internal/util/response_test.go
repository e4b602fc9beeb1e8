package util

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/mentor-eval/internal/apperr"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestErrorFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"form error", NewFormError("invalid evaluation", map[string]string{"feedback": "feedback is required"}), fiber.StatusUnprocessableEntity, "invalid evaluation"},
		{"validation", errors.Join(apperr.ErrValidationFailed, errors.New("bad")), fiber.StatusUnprocessableEntity, "failed"},
		{"not found", apperr.NotFound("evaluation %s", "x"), fiber.StatusNotFound, "failed"},
		{"store", apperr.Store("query", errors.New("boom")), fiber.StatusInternalServerError, "failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return ErrorFromError(c, "failed", tt.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			doc := gjson.ParseBytes(raw)
			assert.False(t, doc.Get("success").Bool())
			assert.Equal(t, tt.message, doc.Get("message").String())
		})
	}
}

func TestFormErrorMatchesValidationFailed(t *testing.T) {
	var err error = NewFormError("invalid", map[string]string{"a": "b"})
	assert.ErrorIs(t, err, apperr.ErrValidationFailed)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}
