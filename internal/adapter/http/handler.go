package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"retailsim/internal/app/ports"
	"retailsim/internal/app/simulation"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	SimUC   simulation.UseCase
	History ports.ActivityHistoryRepository
	KPI     kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/simulation", h.simulationStep)
	api.POST("/simulation", h.simulationRun)
	api.GET("/simulation/detailed", h.simulationDetailed)
	api.GET("/activity", h.activity)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) simulationStep(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SimUC.RunStep(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"success": true,
		"data":    resp.Result,
		"agents":  resp.Agents,
	})
}

func (h Handler) simulationRun(c context.Context, ctx *app.RequestContext) {
	// Absent fields keep their defaults; only present fields override.
	settings := simulation.DefaultSettings()
	if err := decodeJSON(ctx, &settings); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.SimUC.Run(c, settings)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"success":  true,
		"data":     resp.Results,
		"settings": resp.Settings,
	})
}

func (h Handler) simulationDetailed(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SimUC.RunDetailed(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"success": true,
		"data":    resp,
	})
}

func (h Handler) activity(c context.Context, ctx *app.RequestContext) {
	if h.History == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "activity history not configured")
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))

	records, err := h.History.ListRecent(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"success": true,
		"data":    records,
	})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"success": false,
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
