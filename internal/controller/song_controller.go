package controller

import (
	"vibewise-be/internal/dto"
	"vibewise-be/internal/pkg/serverutils"
	"vibewise-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISongController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
}

type songController struct {
	songService service.ISongService
}

func NewSongController(songService service.ISongService) ISongController {
	return &songController{
		songService: songService,
	}
}

func (c *songController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/song/v1")
	h.Post("", c.Create)
}

func (c *songController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSongRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.songService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create song", res))
}
