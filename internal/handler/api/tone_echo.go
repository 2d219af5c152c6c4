package api

import (
	"errors"
	"time"

	models "PolicyTone/internal/domain/models"
	svcmetrics "PolicyTone/internal/service/metrics"
	"PolicyTone/internal/usecase"
	xhttp "PolicyTone/pkg/http"
	xlogger "PolicyTone/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ToneEchoHandler implements Echo-based HTTP handlers following Clean Architecture.
type ToneEchoHandler struct {
	logger *xlogger.Logger
	svc    *usecase.ToneService
}

func NewToneEchoHandler(logger *xlogger.Logger, svc *usecase.ToneService) *ToneEchoHandler {
	svcmetrics.Register()
	return &ToneEchoHandler{logger: logger, svc: svc}
}

func (h *ToneEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/tone", h.Tone)
	g.GET("/backtest", h.Backtest)
	g.GET("/lexicon/stats", h.LexiconStats)
}

func (h *ToneEchoHandler) Tone(c echo.Context) error {
	start := time.Now()
	req := &models.ToneRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rec, err := h.svc.Analyze(c.Request().Context(), req.DocumentID, req.Text)
	if err != nil {
		svcmetrics.APIErrors.WithLabelValues("tone").Inc()
		if errors.Is(err, usecase.ErrDocumentNotFound) {
			return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("document %s not found", req.DocumentID).WithError(err))
		}
		h.logger.Error("tone usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	svcmetrics.APILatency.WithLabelValues("tone").Observe(time.Since(start).Seconds())
	return xhttp.SuccessResponse(c, rec)
}

func (h *ToneEchoHandler) Backtest(c echo.Context) error {
	start := time.Now()
	req := &models.BacktestRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	report, err := h.svc.Backtest(c.Request().Context(), req.StartIndex, req.ChunkSize)
	if err != nil {
		svcmetrics.APIErrors.WithLabelValues("backtest").Inc()
		h.logger.Error("backtest usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	svcmetrics.APILatency.WithLabelValues("backtest").Observe(time.Since(start).Seconds())
	return xhttp.SuccessResponse(c, report)
}

func (h *ToneEchoHandler) LexiconStats(c echo.Context) error {
	start := time.Now()
	req := &models.LexiconStatsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	stats := h.svc.LexiconStats(req.Polarity)
	svcmetrics.APILatency.WithLabelValues("lexicon_stats").Observe(time.Since(start).Seconds())
	return xhttp.SuccessResponse(c, stats)
}
