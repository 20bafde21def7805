package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

func resolve(t *testing.T, err error) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	code, _ := resolveError(err, zerolog.Nop(), c)
	return code
}

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrSupplierNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrNegativeStock, http.StatusUnprocessableEntity},
		{domain.ErrImportParse, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if code := resolve(t, tc.err); code != tc.code {
			t.Errorf("resolveError(%v) = %d, want %d", tc.err, code, tc.code)
		}
	}
}

func TestResolveError_EchoErrorPassthrough(t *testing.T) {
	he := echo.NewHTTPError(http.StatusTeapot, "short and stout")
	if code := resolve(t, he); code != http.StatusTeapot {
		t.Errorf("echo errors must keep their code, got %d", code)
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("save user"), domain.ErrUserNotFound)
	if code := resolve(t, wrapped); code != http.StatusNotFound {
		t.Errorf("wrapped domain errors must still map, got %d", code)
	}
}
