// internal/utils/jwt.go
package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	zlog "github.com/rs/zerolog/log"
)

// JwtClaims is the token payload: standard registered claims plus the user
// identity fields the handlers need.
type JwtClaims struct {
	UserID               int    `json:"user_id"`
	Username             string `json:"username"`
	jwt.RegisteredClaims
}

// jwtSecret signs and verifies tokens. Loaded from JWT_SECRET at package init.
var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

// GenerateJWT creates a signed token for the given user, valid for 72 hours.
func GenerateJWT(userID int, username string) (string, error) {
	expirationTime := time.Now().Add(72 * time.Hour)

	claims := JwtClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "tamagotcho-be",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(jwtSecret)
	if err != nil {
		zlog.Error().Err(err).Msg("Error signing JWT token")
		return "", fmt.Errorf("error signing token: %w", err)
	}

	zlog.Debug().Int("user_id", userID).Str("username", username).Msg("Generated JWT token")
	return signedToken, nil
}

// ValidateJWT verifies the token signature and expiry and decodes the claims.
func ValidateJWT(tokenString string) (*JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject any algorithm other than HMAC to prevent alg substitution.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			algo := "unknown"
			if algStr, okAlg := token.Header["alg"].(string); okAlg {
				algo = algStr
			}
			zlog.Warn().Str("algorithm", algo).Msg("Unexpected signing method during JWT validation")
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		zlog.Warn().Err(err).Msg("Error parsing or validating JWT token")
		return nil, fmt.Errorf("error parsing token: %w", err)
	}

	if claims, ok := token.Claims.(*JwtClaims); ok && token.Valid {
		zlog.Debug().Str("username", claims.Username).Int("user_id", claims.UserID).Msg("JWT token validated successfully")
		return claims, nil
	}

	zlog.Warn().Msg("Invalid token or claims after parsing")
	return nil, fmt.Errorf("invalid token")
}

// ExtractToken pulls the token string from the "Authorization: Bearer <token>"
// header. Returns the empty string when the header is missing or malformed.
func ExtractToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}

	zlog.Warn().Str("AuthorizationHeader", authHeader).Msg("Invalid Authorization header format (Expected 'Bearer <token>')")
	return ""
}

// ExtractUserIDFromJWT reads the UserID from the claims stored in
// c.Locals("user") by the Protected() middleware.
func ExtractUserIDFromJWT(c *fiber.Ctx) (int, error) {
	claims, ok := c.Locals("user").(*JwtClaims)
	if !ok {
		zlog.Error().Str("path", c.Path()).Msg("Could not extract user claims from Fiber context (middleware issue?)")
		return 0, fmt.Errorf("could not extract user claims from context")
	}
	return claims.UserID, nil
}

// ExtractIDFromParam reads a numeric ID from a URL path parameter.
func ExtractIDFromParam(c *fiber.Ctx, paramName string) (int, error) {
	idStr := c.Params(paramName)
	if idStr == "" {
		zlog.Warn().Str("paramName", paramName).Str("path", c.Path()).Msg("Missing ID parameter in URL path")
		return 0, fmt.Errorf("missing ID parameter '%s'", paramName)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		zlog.Warn().Err(err).Str("paramName", paramName).Str("value", idStr).Str("path", c.Path()).Msg("Invalid numeric value for ID parameter")
		return 0, fmt.Errorf("invalid ID parameter '%s': not a number", paramName)
	}
	return id, nil
}
