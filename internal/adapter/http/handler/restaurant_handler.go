package handler

import (
	"loyalty-rewards/internal/adapter/http/dto"
	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/pkg/apperror"
	"loyalty-rewards/pkg/response"

	"github.com/gin-gonic/gin"
)

// RestaurantHandler lists restaurants and switches the active one.
type RestaurantHandler struct {
	sessions ports.SessionService
}

func NewRestaurantHandler(sessions ports.SessionService) *RestaurantHandler {
	return &RestaurantHandler{sessions: sessions}
}

// List handles GET /api/v1/restaurants.
func (h *RestaurantHandler) List(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	store := sess.Store()
	selected, _ := store.Selected()
	list := store.List()

	out := make([]dto.RestaurantResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.NewRestaurantResponse(r, r.ID == selected))
	}
	response.OK(c, out)
}

// Select handles PUT /api/v1/restaurants/selected.
func (h *RestaurantHandler) Select(c *gin.Context) {
	var req dto.SelectRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	store := sess.Store()
	if err := store.SelectContext(req.RestaurantID); err != nil {
		response.Error(c, err)
		return
	}

	r, _ := store.Get(req.RestaurantID)
	response.OK(c, dto.NewRestaurantResponse(r, true))
}
