// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"ligaku_backend/internals/configs"
	authModel "ligaku_backend/internals/features/users/auth/model"
	authRepo "ligaku_backend/internals/features/users/auth/repository"
	userModel "ligaku_backend/internals/features/users/user/model"
	helper "ligaku_backend/internals/helpers"
	helperAuth "ligaku_backend/internals/helpers/auth"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	return configs.JWTSecret, nil
}

func getRefreshSecret() (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET belum diset")
	}
	return configs.JWTRefreshSecret, nil
}

// computeRefreshHash: HMAC-SHA256 dari refresh token; hanya hash yang disimpan.
func computeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

/* ==========================
   Roles claim dari DB
========================== */

type leagueRoleRow struct {
	LeagueID uuid.UUID      `gorm:"column:league_id"`
	Roles    pq.StringArray `gorm:"column:roles"`
}

// getUserRolesClaim: gabungkan role staff (league_staff) dan role pemain
// (players) per liga menjadi satu klaim.
func getUserRolesClaim(db *gorm.DB, userID uuid.UUID) (helperAuth.RolesClaim, []helperAuth.LeagueRolesEntry, error) {
	var user userModel.UserModel
	if err := db.Select("roles_global", "is_owner").First(&user, "id = ?", userID).Error; err != nil {
		return helperAuth.RolesClaim{}, nil, err
	}

	var staffRows []leagueRoleRow
	if err := db.
		Raw(`SELECT league_staff_league_id AS league_id, league_staff_roles AS roles
		     FROM league_staff
		     WHERE league_staff_user_id = ? AND league_staff_is_active = TRUE`, userID).
		Scan(&staffRows).Error; err != nil {
		return helperAuth.RolesClaim{}, nil, err
	}

	var playerLeagues []uuid.UUID
	if err := db.
		Raw(`SELECT DISTINCT players_league_id
		     FROM players
		     WHERE players_user_id = ? AND players_is_active = TRUE AND players_deleted_at IS NULL`, userID).
		Scan(&playerLeagues).Error; err != nil {
		return helperAuth.RolesClaim{}, nil, err
	}

	merged := map[uuid.UUID][]string{}
	for _, r := range staffRows {
		merged[r.LeagueID] = append(merged[r.LeagueID], r.Roles...)
	}
	for _, lid := range playerLeagues {
		merged[lid] = append(merged[lid], "player")
	}

	entries := make([]helperAuth.LeagueRolesEntry, 0, len(merged))
	for lid, roles := range merged {
		entries = append(entries, helperAuth.LeagueRolesEntry{LeagueID: lid, Roles: dedupRoles(roles)})
	}

	return helperAuth.RolesClaim{
		RolesGlobal: user.RolesGlobal,
		LeagueRoles: entries,
	}, entries, nil
}

func dedupRoles(in []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(in))
	for _, r := range in {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

/* ==========================
   Claims & pasangan token
========================== */

func buildAccessClaims(user userModel.UserModel, entries []helperAuth.LeagueRolesEntry, now time.Time) jwt.MapClaims {
	leagueRoles := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		leagueRoles = append(leagueRoles, map[string]any{
			"league_id": e.LeagueID.String(),
			"roles":     e.Roles,
		})
	}

	claims := jwt.MapClaims{
		"id":           user.ID.String(),
		"sub":          user.ID.String(),
		"user_name":    user.UserName,
		"roles_global": []string(user.RolesGlobal),
		"league_roles": leagueRoles,
		"is_owner":     user.IsOwner,
		"iat":          now.Unix(),
		"exp":          now.Add(accessTTLDefault).Unix(),
	}

	// Satu liga = langsung jadi scope aktif; lebih dari satu, klien memilih
	// lewat ?league_id=.
	if len(entries) == 1 {
		claims["active_league_id"] = entries[0].LeagueID.String()
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// IssueTokenPair: terbitkan access + refresh, simpan hash refresh di DB.
func IssueTokenPair(db *gorm.DB, c *fiber.Ctx, user userModel.UserModel) (string, string, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	_, entries, err := getUserRolesClaim(db, user.ID)
	if err != nil {
		return "", "", err
	}

	now := time.Now().UTC()
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, entries, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func strptr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

/* ==========================
   Refresh (rotasi)
========================== */

// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = c.BodyParser(&input)
	raw := strings.TrimSpace(input.RefreshToken)
	if raw == "" {
		raw = strings.TrimSpace(c.Cookies("refresh_token"))
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("metode signing tidak dikenal")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	hash := computeRefreshHash(raw, refreshSecret)
	if _, err := authRepo.FindRefreshTokenByHashActive(db, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		log.Printf("[ERROR] cari refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama sebelum terbitkan yang baru.
	if err := authRepo.RevokeRefreshTokenByHash(db, hash); err != nil {
		log.Printf("[ERROR] revoke refresh token lama: %v", err)
	}

	access, refresh, err := IssueTokenPair(db, c, *user)
	if err != nil {
		log.Printf("[ERROR] terbitkan token baru: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui token")
	}

	setRefreshCookie(c, refresh)
	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func setRefreshCookie(c *fiber.Ctx, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  time.Now().Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}
