package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func pageProbe(t *testing.T, target string) int {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got int
	router := gin.New()
	router.Use(PaginationMiddleware())
	router.GET("/probe", func(c *gin.Context) {
		got = PageFromContext(c)
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return got
}

func TestPaginationParsesPage(t *testing.T) {
	if got := pageProbe(t, "/probe?page=3"); got != 3 {
		t.Fatalf("expected page 3, got %d", got)
	}
}

func TestPaginationCoercesInvalidInputToZero(t *testing.T) {
	for _, target := range []string{"/probe", "/probe?page=abc", "/probe?page=-2"} {
		if got := pageProbe(t, target); got != 0 {
			t.Fatalf("expected page 0 for %q, got %d", target, got)
		}
	}
}
