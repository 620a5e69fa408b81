package middleware

import (
	"strings"

	"storefront-catalog/internal/config"
	"storefront-catalog/internal/service"
	"storefront-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const viewerContextKey = "viewer"

type viewerClaims struct {
	CustomerID uint   `json:"customer_id"`
	GroupIDs   []uint `json:"group_ids"`
	jwt.RegisteredClaims
}

// ViewerMiddleware resolves the viewer identity for the request. A valid
// Bearer token yields the customer and their groups; everything else falls
// back to the anonymous viewer carrying the guest group. The category page is
// public, so a bad token never rejects the request.
func ViewerMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		language := c.DefaultQuery("lang_code", cfg.DefaultLanguage)
		viewer := service.Anonymous(cfg.GuestGroupID, language)

		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := &viewerClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWTSecret), nil
			})

			if err == nil && token.Valid {
				viewer.CustomerID = claims.CustomerID
				if len(claims.GroupIDs) > 0 {
					viewer.GroupIDs = claims.GroupIDs
				}
			} else if err != nil {
				logger.Debug("Ignoring invalid viewer token", map[string]interface{}{
					"reason": err.Error(),
				})
			}
		}

		c.Set(viewerContextKey, viewer)
		c.Next()
	}
}

// ViewerFromContext returns the viewer resolved by ViewerMiddleware, or an
// anonymous viewer when the middleware did not run.
func ViewerFromContext(c *gin.Context, cfg *config.Config) service.Viewer {
	if value, ok := c.Get(viewerContextKey); ok {
		if viewer, ok := value.(service.Viewer); ok {
			return viewer
		}
	}
	return service.Anonymous(cfg.GuestGroupID, cfg.DefaultLanguage)
}
