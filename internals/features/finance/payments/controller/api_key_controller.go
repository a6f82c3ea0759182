// file: internals/features/finance/payments/controller/api_key_controller.go
package controller

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classraum_backend/internals/features/finance/payments/model"
	helper "classraum_backend/internals/helpers"
)

type ApiKeyController struct {
	DB *gorm.DB
}

func NewApiKeyController(db *gorm.DB) *ApiKeyController {
	return &ApiKeyController{DB: db}
}

type apiKeyCreateDTO struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// 🟢 POST /api/a/payments/api-keys
// Returns the plaintext key exactly once.
func (ctrl *ApiKeyController) Create(c *fiber.Ctx) error {
	if _, err := helper.AcademyIDFromToken(c); err != nil {
		return err
	}

	var in apiKeyCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if fieldErrs, err := helper.ValidateStruct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid input")
	} else if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	prefix, err := randomHex(4) // 8 chars
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	secret, err := randomHex(24) // 48 chars
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	key := model.ApiKeyModel{
		ApiKeyName:     in.Name,
		ApiKeyPrefix:   prefix,
		ApiKeyHash:     string(hash),
		ApiKeyIsActive: true,
	}
	if err := ctrl.DB.Create(&key).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "api key created, store it now: it is not shown again", fiber.Map{
		"api_key_id": key.ApiKeyID,
		"name":       key.ApiKeyName,
		"api_key":    prefix + "." + secret,
	})
}

// 🟢 GET /api/a/payments/api-keys
func (ctrl *ApiKeyController) List(c *fiber.Ctx) error {
	if _, err := helper.AcademyIDFromToken(c); err != nil {
		return err
	}

	var keys []model.ApiKeyModel
	if err := ctrl.DB.Order("api_key_created_at DESC").Find(&keys).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", keys)
}

// 🟢 DELETE /api/a/payments/api-keys/:id — revoke, keep for audit.
func (ctrl *ApiKeyController) Revoke(c *fiber.Ctx) error {
	if _, err := helper.AcademyIDFromToken(c); err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid api key id")
	}

	res := ctrl.DB.Model(&model.ApiKeyModel{}).
		Where("api_key_id = ?", id).
		Update("api_key_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "api key not found")
	}

	return helper.JsonDeleted(c, "api key revoked", fiber.Map{"api_key_id": id})
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
