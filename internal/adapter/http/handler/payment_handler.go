package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"loyalty-rewards/internal/adapter/http/dto"
	"loyalty-rewards/internal/adapter/http/middleware"
	"loyalty-rewards/internal/core/domain"
	"loyalty-rewards/internal/core/ports"
	"loyalty-rewards/pkg/apperror"
	"loyalty-rewards/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderGestureID lets a client retry a release and get the original answer.
	HeaderGestureID = "X-Gesture-ID"
	HeaderReplayed  = "X-Replayed"

	releaseTTL = 10 * time.Minute
)

// cachedRelease is the stored form of a release response.
type cachedRelease struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// PaymentHandler exposes the slide-to-confirm controller.
type PaymentHandler struct {
	sessions ports.SessionService
	cache    ports.ReleaseCache // nil = no replay
	log      zerolog.Logger
}

func NewPaymentHandler(sessions ports.SessionService, cache ports.ReleaseCache, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{sessions: sessions, cache: cache, log: log}
}

// View handles GET /api/v1/payment.
func (h *PaymentHandler) View(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}
	response.OK(c, dto.NewSliderViewResponse(sess.Controller().View()))
}

// SelectBucket handles PUT /api/v1/payment/bucket.
func (h *PaymentHandler) SelectBucket(c *gin.Context) {
	var req dto.SelectBucketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	ctrl := sess.Controller()
	if err := ctrl.SelectBucket(domain.BucketKind(req.Bucket)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewSliderViewResponse(ctrl.View()))
}

// SetAmount handles PUT /api/v1/payment/amount.
func (h *PaymentHandler) SetAmount(c *gin.Context) {
	var req dto.SetAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	ctrl := sess.Controller()
	ctrl.SetAmount(req.Amount)
	response.OK(c, dto.NewSliderViewResponse(ctrl.View()))
}

// DragStart handles POST /api/v1/payment/drag/start.
func (h *PaymentHandler) DragStart(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}
	ctrl := sess.Controller()
	ctrl.DragStart()
	response.OK(c, dto.NewSliderViewResponse(ctrl.View()))
}

// DragUpdate handles POST /api/v1/payment/drag/update.
func (h *PaymentHandler) DragUpdate(c *gin.Context) {
	var req dto.DragUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}
	ctrl := sess.Controller()
	ctrl.DragUpdate(*req.DX)
	response.OK(c, dto.NewSliderViewResponse(ctrl.View()))
}

// DragEnd handles POST /api/v1/payment/drag/end. With an X-Gesture-ID
// header, a repeated request returns the first response unchanged.
func (h *PaymentHandler) DragEnd(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var cacheKey string
	if gestureID := c.GetHeader(HeaderGestureID); gestureID != "" && h.cache != nil {
		cacheKey = userID.String() + ":" + gestureID
		if h.replay(c, cacheKey) {
			return
		}
	}

	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}

	ctrl := sess.Controller()
	rel, err := ctrl.DragEnd()

	var (
		status int
		body   interface{}
	)
	if err != nil {
		status, body = response.Failure(c, err)
	} else {
		status, body = http.StatusOK, response.Success(c, dto.NewReleaseResponse(rel, ctrl.View()))
	}

	raw, mErr := json.Marshal(body)
	if mErr != nil {
		response.Error(c, apperror.InternalError(mErr))
		return
	}

	if cacheKey != "" {
		entry, _ := json.Marshal(cachedRelease{Status: status, Body: raw})
		if cErr := h.cache.Set(c.Request.Context(), cacheKey, entry, releaseTTL); cErr != nil {
			h.log.Warn().Err(cErr).Str("gesture_id", cacheKey).Msg("failed to cache release response")
		}
	}

	c.Data(status, "application/json; charset=utf-8", raw)
}

// replay writes a cached release response. Cache errors fall through to a
// live release; the controller itself never debits twice.
func (h *PaymentHandler) replay(c *gin.Context, key string) bool {
	raw, err := h.cache.Get(c.Request.Context(), key)
	if err != nil {
		h.log.Warn().Err(err).Msg("release cache unavailable, processing live")
		return false
	}
	if raw == nil {
		return false
	}

	var entry cachedRelease
	if err := json.Unmarshal(raw, &entry); err != nil {
		h.log.Warn().Err(err).Msg("discarding unreadable release cache entry")
		return false
	}

	c.Header(HeaderReplayed, "true")
	c.Data(entry.Status, "application/json; charset=utf-8", entry.Body)
	return true
}

// Tick handles POST /api/v1/payment/tick.
func (h *PaymentHandler) Tick(c *gin.Context) {
	sess, ok := sessionFor(c, h.sessions)
	if !ok {
		return
	}
	response.OK(c, dto.NewSliderViewResponse(sess.Controller().Tick(time.Now())))
}
