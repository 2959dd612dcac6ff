package controller

import (
	"learnz-tutor-be/internal/dto"
	"learnz-tutor-be/internal/pkg/serverutils"
	"learnz-tutor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITutorController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	AskClassroom(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	ClassroomHistory(ctx *fiber.Ctx) error
}

type tutorController struct {
	tutorService service.ITutorService
}

func NewTutorController(tutorService service.ITutorService) ITutorController {
	return &tutorController{
		tutorService: tutorService,
	}
}

func (c *tutorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tutor/v1")
	h.Post("ask", c.Ask) // open: the video player chat works without login
	h.Get("history", c.History)

	protected := h.Group("/classroom")
	protected.Use(serverutils.JwtMiddleware)
	protected.Post("ask", c.AskClassroom)
	protected.Get("history", c.ClassroomHistory)
}

// Ask returns the raw ai_text/ai_audio/ai_reasoning/ai_quiz object, not the
// usual envelope - the player frontend consumes this shape directly.
func (c *tutorController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskTutorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tutorService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *tutorController) AskClassroom(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AskTutorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tutorService.AskClassroom(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *tutorController) History(ctx *fiber.Ctx) error {
	res, err := c.tutorService.GetHistory(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show tutor history", res))
}

func (c *tutorController) ClassroomHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	videoId := ctx.Query("videoId")

	res, err := c.tutorService.GetClassroomHistory(ctx.Context(), userId, videoId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show classroom tutor history", res))
}
