// Command tokengen mints an HS256 bearer token for the admin API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
)

func main() {
	cfg := config.Load()

	sub := flag.String("sub", "admin", "token subject (actor recorded in audit logs)")
	role := flag.String("role", "admin", "role claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	secret := flag.String("secret", cfg.JWTSecret, "HMAC secret, defaults to JWT_SECRET")
	flag.Parse()

	if *sub == "" {
		fmt.Fprintln(os.Stderr, "tokengen: -sub is required")
		os.Exit(2)
	}

	token, err := generateToken(*sub, *role, *secret, *ttl, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func generateToken(sub, role, secret string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
