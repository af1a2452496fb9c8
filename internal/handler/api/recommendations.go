package api

import (
	"time"

	models "FinAdvisor/internal/domain/models"
	"FinAdvisor/internal/usecase"
	xhttp "FinAdvisor/pkg/http"
	xlogger "FinAdvisor/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RecommendationsHandler exposes the recommendation pipeline over Echo.
type RecommendationsHandler struct {
	logger      *xlogger.Logger
	recommender *usecase.Recommender
	board       *usecase.LiveBoard
	collector   *usecase.QuoteCollector
}

func NewRecommendationsHandler(logger *xlogger.Logger, recommender *usecase.Recommender, board *usecase.LiveBoard) *RecommendationsHandler {
	return &RecommendationsHandler{logger: logger, recommender: recommender, board: board}
}

// SetCollector wires the quote collector for health reporting.
func (h *RecommendationsHandler) SetCollector(c *usecase.QuoteCollector) { h.collector = c }

func (h *RecommendationsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/recommendations/stocks", h.Stocks)
	g.POST("/recommendations/forex", h.Forex)
	g.GET("/quotes/live", h.LiveQuotes)
	e.GET("/health", h.Health)
}

func (h *RecommendationsHandler) Stocks(c echo.Context) error {
	start := time.Now()
	req := &models.UserProfile{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	recs, err := h.recommender.GenerateStocks(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("stocks recommend error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	h.logger.Debug("stocks recommend ok",
		xlogger.Int("count", len(recs)),
		xlogger.Duration("duration_ms", time.Since(start)),
	)
	return xhttp.SuccessResponse(c, recs)
}

func (h *RecommendationsHandler) Forex(c echo.Context) error {
	start := time.Now()
	req := &models.UserProfile{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	recs, err := h.recommender.GenerateForex(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("forex recommend error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	h.logger.Debug("forex recommend ok",
		xlogger.Int("count", len(recs)),
		xlogger.Duration("duration_ms", time.Since(start)),
	)
	return xhttp.SuccessResponse(c, recs)
}

func (h *RecommendationsHandler) LiveQuotes(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.board.Snapshot())
}

func (h *RecommendationsHandler) Health(c echo.Context) error {
	status := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC(),
	}
	if h.collector != nil {
		status["stream_connected"] = h.collector.IsConnected()
	}
	return xhttp.SuccessResponse(c, status)
}
