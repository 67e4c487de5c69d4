// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ligaku_backend/internals/configs"
	authRepo "ligaku_backend/internals/features/users/auth/repository"
	userModel "ligaku_backend/internals/features/users/user/model"
	helper "ligaku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */

// POST /api/public/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	taken, err := authRepo.IsUsernameTaken(db, input.UserName)
	if err != nil {
		log.Printf("[ERROR] cek username: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa username")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Username sudah dipakai")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName: input.UserName,
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: string(hashed),
	}
	user.SetDefaultValues()

	if err := authRepo.CreateUser(db, &user); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] buat user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* ==========================
   LOGIN
========================== */

// POST /api/public/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier" validate:"required"`
		Password   string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, strings.TrimSpace(input.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
		}
		log.Printf("[ERROR] cari user login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
	}

	access, refresh, err := IssueTokenPair(db, c, *user)
	if err != nil {
		log.Printf("[ERROR] terbitkan token login: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	setRefreshCookie(c, refresh)
	log.Printf("[SUCCESS] login user %s", user.ID)
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
		},
	})
}

/* ==========================
   LOGIN GOOGLE
========================== */

// POST /api/public/auth/login-google
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token tidak valid")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Gagal membaca Google ID token")
	}

	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] cari user google: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
		}
		// Akun baru dari Google: password acak, tidak bisa dipakai login biasa.
		googleID := claimSet.Sub
		hashed, herr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}
		newUser := userModel.UserModel{
			UserName: deriveUserName(claimSet.Name, claimSet.Email),
			Email:    strings.ToLower(claimSet.Email),
			Password: string(hashed),
			GoogleID: &googleID,
		}
		newUser.SetDefaultValues()
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			log.Printf("[ERROR] buat user google: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}
		user = &newUser
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	access, refresh, err := IssueTokenPair(db, c, *user)
	if err != nil {
		log.Printf("[ERROR] terbitkan token google: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	setRefreshCookie(c, refresh)
	return helper.JsonOK(c, "Login Google berhasil", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func deriveUserName(name, email string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "user-" + uuid.NewString()[:8]
}

/* ==========================
   LOGOUT
========================== */

// POST /api/u/auth/logout
// Access token masuk blacklist sampai expired; refresh token di-revoke.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	accessToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, accessTTLDefault); err != nil {
			log.Printf("[ERROR] blacklist access token: %v", err)
		}
	}

	if raw := strings.TrimSpace(c.Cookies("refresh_token")); raw != "" {
		if secret, err := getRefreshSecret(); err == nil {
			if err := authRepo.RevokeRefreshTokenByHash(db, computeRefreshHash(raw, secret)); err != nil {
				log.Printf("[ERROR] revoke refresh token: %v", err)
			}
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})

	return helper.JsonOK(c, "Logout berhasil", nil)
}
