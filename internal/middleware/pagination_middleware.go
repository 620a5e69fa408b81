package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginationMiddleware resolves the generic `page` request parameter once per
// request. Non-numeric or negative input coerces to 0, which downstream code
// reads as "no explicit page".
func PaginationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
		if err != nil || page < 0 {
			page = 0
		}
		c.Set("page", page)
		c.Next()
	}
}

// PageFromContext returns the page number resolved by PaginationMiddleware.
func PageFromContext(c *gin.Context) int {
	if value, ok := c.Get("page"); ok {
		if page, ok := value.(int); ok {
			return page
		}
	}
	return 0
}
