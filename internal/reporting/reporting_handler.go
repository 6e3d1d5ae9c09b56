package reporting

import (
	"net/http"
	"time"

	"go-finboard/internal/shared/apperror"
	"go-finboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("reporting.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) MonthlySpend(c *gin.Context) {
	brandID := c.GetString("brand_id")
	month := c.Query("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	resp, err := h.service.MonthlySpend(c.Request.Context(), brandID, month)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("monthly spend request failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
