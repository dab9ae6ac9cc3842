package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"formku_backend/internals/constants"
	authService "formku_backend/internals/features/users/auth/service"
	helper "formku_backend/internals/helpers"
	helperAuth "formku_backend/internals/helpers/auth"
)

type AuthController struct {
	Service   *authService.AuthService
	Validator *validator.Validate
}

func NewAuthController(svc *authService.AuthService) *AuthController {
	return &AuthController{Service: svc, Validator: validator.New()}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var in authService.RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validator.Struct(&in); err != nil {
		return helper.JsonFromError(c, err)
	}
	res, err := ac.Service.Register(c.UserContext(), in)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Registration successful", res)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in authService.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validator.Struct(&in); err != nil {
		return helper.JsonFromError(c, err)
	}
	res, err := ac.Service.Login(c.UserContext(), in)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Login successful", res)
}

// POST /api/auth/logout (butuh token)
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals(constants.LocalsToken).(string)
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - No token provided")
	}
	if err := ac.Service.Logout(c.UserContext(), token); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Logout successful", nil)
}

// GET /api/auth/me (butuh token)
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	user, err := ac.Service.Me(c.UserContext(), userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "ok", user)
}
