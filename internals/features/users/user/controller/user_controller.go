// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ligaku_backend/internals/features/users/user/dto"
	"ligaku_backend/internals/features/users/user/model"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// GET /api/u/users/me
func (ctl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Printf("[ERROR] ambil user %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helper.JsonOK(c, "Profil berhasil diambil", dto.ToUserResponse(user))
}

// PUT /api/u/users/me/username
func (ctl *UserController) UpdateUserName(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateUserNameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctl.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("user_name", req.UserName).Error; err != nil {
		log.Printf("[ERROR] update username %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui username")
	}

	return helper.JsonUpdated(c, "Username berhasil diperbarui", fiber.Map{"user_name": req.UserName})
}

// GET /api/o/users — daftar semua user, khusus owner.
func (ctl *UserController) GetAllUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.Model(&model.UserModel{})
	if search := c.Query("q"); search != "" {
		q = q.Where("user_name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] hitung users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	var rows []model.UserModel
	if err := q.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ambil users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	items := dto.ToUserResponses(rows)
	return helper.JsonList(c, "Daftar user berhasil diambil", items,
		helper.BuildPagination(total, len(items), p))
}

// GET /api/o/users/:id
func (ctl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Printf("[ERROR] ambil user %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonOK(c, "User berhasil diambil", dto.ToUserResponse(user))
}

// PUT /api/o/users/:id/active — aktif/nonaktifkan akun.
func (ctl *UserController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	res := ctl.DB.Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("is_active", req.IsActive)
	if res.Error != nil {
		log.Printf("[ERROR] set active user %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Status user berhasil diubah", fiber.Map{
		"id":        id,
		"is_active": req.IsActive,
	})
}
