package controller

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inmosalta_backend/internal/model"
	"inmosalta_backend/pkg/config"
	"inmosalta_backend/pkg/slot"
	"inmosalta_backend/pkg/utils/jwt"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthController implements the hardcoded-credential login flow. There
// is no account table: the single agency admin comes from configuration
// and the active session lives in the currentUser/authToken/refreshToken
// slots.
type AuthController struct {
	slots        slot.Store
	admin        config.AdminConfig
	passwordHash []byte
}

func NewAuthController(slots slot.Store, admin config.AdminConfig) (*AuthController, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthController{slots: slots, admin: admin, passwordHash: hash}, nil
}

func (ac *AuthController) adminUser() model.User {
	return model.User{
		ID:        "1",
		Name:      ac.admin.Name,
		Email:     ac.admin.Email,
		Role:      model.UserRoleAdmin,
		Phone:     "+54 387 123456",
		Address:   "Salta, Argentina",
		CreatedAt: time.Now(),
	}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Email != ac.admin.Email ||
		bcrypt.CompareHashAndPassword(ac.passwordHash, []byte(input.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	user := ac.adminUser()
	token, err := jwt.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}
	refreshToken := uuid.NewString()

	rawUser, err := json.Marshal(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not persist session",
		})
	}
	if err := ac.slots.Put(slot.SlotCurrentUser, rawUser); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not persist session",
		})
	}
	if err := ac.slots.Put(slot.SlotAuthToken, []byte(token)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not persist session",
		})
	}
	if err := ac.slots.Put(slot.SlotRefreshToken, []byte(refreshToken)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not persist session",
		})
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"user":         user.GetPublicProfile(),
	})
}

// GetMe returns the session user from the currentUser slot.
func (ac *AuthController) GetMe(c *fiber.Ctx) error {
	raw, ok, err := ac.slots.Get(slot.SlotCurrentUser)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not read session",
		})
	}
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No active session",
		})
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not read session",
		})
	}
	return c.JSON(fiber.Map{"user": user.GetPublicProfile()})
}

// Logout clears the session slots.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.slots.Delete(slot.SlotCurrentUser)
	ac.slots.Delete(slot.SlotAuthToken)
	ac.slots.Delete(slot.SlotRefreshToken)
	return c.SendStatus(fiber.StatusOK)
}
