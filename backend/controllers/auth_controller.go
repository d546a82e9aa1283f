package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studytutor/backend/config"
	"studytutor/backend/store"
	"studytutor/backend/tutor"
	"studytutor/backend/utils"
)

type AuthController struct {
	Store    *store.Store
	Cfg      *config.Config
	Sessions *tutor.SessionStore
}

func NewAuthController(s *store.Store, cfg *config.Config, sessions *tutor.SessionStore) *AuthController {
	return &AuthController{Store: s, Cfg: cfg, Sessions: sessions}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Please fill in all fields")
	}
	if len(input.Password) < 6 {
		return utils.BadRequest(c, "Password must be at least 6 characters long")
	}

	user, err := ac.Store.CreateUser(input.Username, input.Email, input.Password, input.FullName)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return utils.Conflict(c, "Username or email already exists")
		}
		return utils.InternalServerError(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(user.UserID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user.Profile(),
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Store.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			// Same message for unknown user and wrong password.
			return utils.Unauthorized(c, "Invalid username or password")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	token, err := utils.GenerateJWTToken(user.UserID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	if err := ac.Store.TouchLastActive(user.UserID); err != nil {
		return utils.InternalServerError(c, "Could not update activity")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.Profile(),
	})
}

// Logout clears the server-side chat session. The JWT itself simply
// expires; there is no token blacklist.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	ac.Sessions.Clear(userID)
	return c.JSON(fiber.Map{"message": "Logged out"})
}
