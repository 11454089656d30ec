package handler

import (
	"loyalty-rewards/internal/adapter/http/middleware"
	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/pkg/apperror"
	"loyalty-rewards/pkg/response"

	"github.com/gin-gonic/gin"
)

// sessionFor resolves the caller's payment session, writing the error
// response itself when it cannot.
func sessionFor(c *gin.Context, sessions ports.SessionService) (ports.PaymentSession, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return nil, false
	}
	sess, err := sessions.Session(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return sess, true
}
