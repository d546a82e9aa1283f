package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studytutor/backend/config"
	"studytutor/backend/store"
	"studytutor/backend/utils"
)

type UserController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewUserController(s *store.Store, cfg *config.Config) *UserController {
	return &UserController{Store: s, Cfg: cfg}
}

func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	user, err := uc.Store.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(user.Profile())
}

func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	type UpdateInput struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Email == "" {
		return utils.BadRequest(c, "Email is required")
	}

	if err := uc.Store.UpdateProfile(userID, input.Email, input.FullName); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return utils.Conflict(c, "Email already in use")
		}
		return utils.InternalServerError(c, "Could not update profile")
	}

	user, err := uc.Store.GetUserByID(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	return c.JSON(user.Profile())
}
