package models

import "github.com/golang-jwt/jwt/v5"

// SupabaseClaims are the claims carried by a Supabase-issued JWT. Sub is the
// authenticated user_id and must match the user_id in the request path.
type SupabaseClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Sub   string `json:"sub"`
	Role  string `json:"role"`
}
