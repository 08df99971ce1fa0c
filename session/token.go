package session

import (
	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Session is what the views get out of the stored credential. This is a
// display gate only; nothing here verifies the token signature, the real
// authorization boundary lives server-side.
type Session struct {
	DisplayName     string      `json:"displayName"`
	Role            models.Role `json:"role"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}

var anonymous = Session{}

// Decode reads the role and display-name claims out of the credential's
// payload segment without verifying the signature. Any malformed input is
// logged and treated as anonymous, never surfaced as an error.
func Decode(raw string) Session {
	if raw == "" {
		return anonymous
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		zap.L().Warn("failed to decode stored credential, treating session as anonymous", zap.Error(err))
		return anonymous
	}

	role := claimString(claims, "role")
	name := claimString(claims, "unique_name")
	if name == "" {
		name = claimString(claims, "name")
	}
	if role == "" {
		zap.L().Warn("credential payload carries no role claim, treating session as anonymous")
		return anonymous
	}

	return Session{
		DisplayName:     name,
		Role:            models.Role(role),
		IsAuthenticated: true,
	}
}

// claimString tolerates both a plain string claim and the single-element
// array shape some token issuers emit.
func claimString(claims jwt.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return v
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}
