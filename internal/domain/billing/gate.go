package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/pkg/response"
)

// Gate blocks mutating requests for gyms whose trial or paid period has
// ended. Reads stay available so the owner can still see their data while
// deciding whether to pay.
func Gate(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		gymID := c.GetInt64("gym_id")
		if gymID == 0 {
			c.Next()
			return
		}

		_, usable, err := service.GetStatus(c.Request.Context(), gymID)
		if err != nil {
			// fail open: a billing-table outage must not take the product down
			c.Next()
			return
		}
		if !usable {
			response.Error(c, http.StatusPaymentRequired, "SUBSCRIPTION_EXPIRED",
				"Your trial or subscription has ended. Activate your account to continue.")
			c.Abort()
			return
		}

		c.Next()
	}
}
