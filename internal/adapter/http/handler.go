package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"buddyverse/internal/app/adventures"
	"buddyverse/internal/app/companion"
	"buddyverse/internal/app/cooldown"
	"buddyverse/internal/app/history"
	"buddyverse/internal/app/ports"
	"buddyverse/internal/app/status"
	"buddyverse/internal/domain/buddy"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Companion is the mutating surface of the buddy. *companion.Service
// satisfies it.
type Companion interface {
	Feed(ctx context.Context) (companion.Outcome, error)
	Play(ctx context.Context) (companion.Outcome, error)
	Pet(ctx context.Context) (companion.Outcome, error)
	CheckIn(ctx context.Context) (companion.Outcome, error)
	StartAdventure(ctx context.Context, adventureID string) (companion.Outcome, error)
	CompleteAdventure(ctx context.Context) (companion.Outcome, error)
	Rename(ctx context.Context, name string) (companion.Outcome, error)
	SetBuddyType(ctx context.Context, t buddy.BuddyType) (companion.Outcome, error)
	SetClothing(ctx context.Context, c buddy.Clothing) (companion.Outcome, error)
}

type Handler struct {
	Companion    Companion
	StatusUC     status.UseCase
	HistoryUC    history.UseCase
	AdventuresUC adventures.UseCase
	KPI          kpiSnapshotProvider

	// CORSOrigin is echoed in Access-Control-Allow-Origin; empty allows any.
	CORSOrigin string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.CORSOrigin))

	api := s.Group("/api")
	api.GET("/buddy", h.status)
	api.GET("/history", h.history)
	api.GET("/adventures", h.adventures)

	b := api.Group("/buddy")
	b.POST("/feed", h.feed)
	b.POST("/play", h.play)
	b.POST("/pet", h.pet)
	b.POST("/checkin", h.checkIn)
	b.POST("/name", h.rename)
	b.POST("/type", h.setBuddyType)
	b.POST("/clothing", h.setClothing)

	adv := api.Group("/adventure")
	adv.POST("/start", h.startAdventure)
	adv.POST("/complete", h.completeAdventure)

	s.GET("/ops/kpi", h.kpi)
}

type renameRequest struct {
	Name string `json:"name"`
}

type buddyTypeRequest struct {
	BuddyType string `json:"buddy_type"`
}

type clothingRequest struct {
	Clothing string `json:"clothing"`
}

type startAdventureRequest struct {
	AdventureID string `json:"adventure_id"`
}

// outcomeResponse is the body of every mutating call. A rejected action is
// still a 200: the result_code says why nothing changed.
type outcomeResponse struct {
	ResultCode       buddy.Status        `json:"result_code"`
	Action           buddy.ActionType    `json:"action"`
	Committed        bool                `json:"committed"`
	RemainingSeconds int                 `json:"remaining_seconds,omitempty"`
	State            companion.State     `json:"state"`
	Events           []buddy.DomainEvent `json:"events,omitempty"`
}

func newOutcomeResponse(out companion.Outcome) outcomeResponse {
	return outcomeResponse{
		ResultCode:       out.Status,
		Action:           out.Action,
		Committed:        out.Committed,
		RemainingSeconds: cooldown.CeilSeconds(out.Remaining),
		State:            out.State,
		Events:           out.Events,
	}
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) feed(c context.Context, ctx *app.RequestContext) {
	h.writeOutcome(ctx)(h.Companion.Feed(c))
}

func (h Handler) play(c context.Context, ctx *app.RequestContext) {
	h.writeOutcome(ctx)(h.Companion.Play(c))
}

func (h Handler) pet(c context.Context, ctx *app.RequestContext) {
	h.writeOutcome(ctx)(h.Companion.Pet(c))
}

func (h Handler) checkIn(c context.Context, ctx *app.RequestContext) {
	h.writeOutcome(ctx)(h.Companion.CheckIn(c))
}

func (h Handler) completeAdventure(c context.Context, ctx *app.RequestContext) {
	h.writeOutcome(ctx)(h.Companion.CompleteAdventure(c))
}

func (h Handler) startAdventure(c context.Context, ctx *app.RequestContext) {
	var body startAdventureRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.writeOutcome(ctx)(h.Companion.StartAdventure(c, body.AdventureID))
}

func (h Handler) rename(c context.Context, ctx *app.RequestContext) {
	var body renameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.writeOutcome(ctx)(h.Companion.Rename(c, body.Name))
}

func (h Handler) setBuddyType(c context.Context, ctx *app.RequestContext) {
	var body buddyTypeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.writeOutcome(ctx)(h.Companion.SetBuddyType(c, buddy.BuddyType(body.BuddyType)))
}

func (h Handler) setClothing(c context.Context, ctx *app.RequestContext) {
	var body clothingRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.writeOutcome(ctx)(h.Companion.SetClothing(c, buddy.Clothing(body.Clothing)))
}

func (h Handler) writeOutcome(ctx *app.RequestContext) func(companion.Outcome, error) {
	return func(out companion.Outcome, err error) {
		if err != nil {
			writeError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, newOutcomeResponse(out))
	}
}

func (h Handler) adventures(c context.Context, ctx *app.RequestContext) {
	resp, err := h.AdventuresUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", "limit must be an integer")
		return
	}
	occurredFrom, err := queryInt64(ctx, "occurred_from")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", "occurred_from must be unix seconds")
		return
	}
	occurredTo, err := queryInt64(ctx, "occurred_to")
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", "occurred_to must be unix seconds")
		return
	}
	resp, err := h.HistoryUC.Execute(c, history.Request{
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func queryInt(ctx *app.RequestContext, key string) (int, error) {
	raw := string(ctx.Query(key))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func queryInt64(ctx *app.RequestContext, key string) (int64, error) {
	raw := string(ctx.Query(key))
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
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
	var fieldErr *companion.InvalidFieldError
	switch {
	case errors.As(err, &fieldErr):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_"+fieldErr.Field, err.Error())
	case errors.Is(err, companion.ErrUnknownAdventure):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_adventure", err.Error())
	case errors.Is(err, companion.ErrInvalidRequest),
		errors.Is(err, history.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
