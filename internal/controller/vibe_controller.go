package controller

import (
	"errors"

	"vibewise-be/internal/dto"
	"vibewise-be/internal/pkg/serverutils"
	"vibewise-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVibeController interface {
	RegisterRoutes(r fiber.Router)
	Autocomplete(ctx *fiber.Ctx) error
	Recommend(ctx *fiber.Ctx) error
	Watch(ctx *fiber.Ctx) error
	NavigateSong(ctx *fiber.Ctx) error
	NavigateSetVibe(ctx *fiber.Ctx) error
	State(ctx *fiber.Ctx) error
}

type vibeController struct {
	vibeService    service.IVibeService
	sessionService service.ISessionService
}

func NewVibeController(vibeService service.IVibeService, sessionService service.ISessionService) IVibeController {
	return &vibeController{
		vibeService:    vibeService,
		sessionService: sessionService,
	}
}

func (c *vibeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/vibe/v1")
	h.Get("autocomplete", c.Autocomplete)
	h.Get("state", c.State)
	h.Post("recommend", c.Recommend)
	h.Post("watch", c.Watch)
	h.Post("navigate/song", c.NavigateSong)
	h.Post("navigate/set-vibe", c.NavigateSetVibe)
}

// sessionID identifies the caller's session. The desktop client runs single
// user, so a missing header maps to the shared "local" session.
func sessionID(ctx *fiber.Ctx) string {
	id := ctx.Get("X-Session-Id")
	if id == "" {
		return "local"
	}
	return id
}

func (c *vibeController) Autocomplete(ctx *fiber.Ctx) error {
	q := ctx.Query("q", "")

	suggestions, err := c.vibeService.Autocomplete(ctx.Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success autocomplete", dto.AutocompleteResponse{
		Suggestions: suggestions,
	}))
}

func (c *vibeController) Recommend(ctx *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.vibeService.Recommend(ctx.Context(), sessionID(ctx), req.Query, req.TopK)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Query must not be empty"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success recommend songs", res))
}

func (c *vibeController) Watch(ctx *fiber.Ctx) error {
	var req dto.WatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Watch(ctx.Context(), sessionID(ctx), req.Index)
	if err != nil {
		if errors.Is(err, service.ErrResultIndexOutOfRange) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Result index out of range"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success watch video", res))
}

func (c *vibeController) NavigateSong(ctx *fiber.Ctx) error {
	res := c.sessionService.RequestSongView(sessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success navigate", res))
}

func (c *vibeController) NavigateSetVibe(ctx *fiber.Ctx) error {
	res := c.sessionService.BackToSetVibe(sessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success navigate", res))
}

func (c *vibeController) State(ctx *fiber.Ctx) error {
	res := c.sessionService.State(sessionID(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Success get session state", res))
}
