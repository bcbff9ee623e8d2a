package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	PageSize  int
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":3030"
	}

	mongoURI := strings.TrimSpace(os.Getenv("MONGO_URI"))
	if mongoURI == "" {
		mongoURI = "mongodb://127.0.0.1:27017"
	}

	mongoDB := strings.TrimSpace(os.Getenv("MONGO_DB"))
	if mongoDB == "" {
		mongoDB = "toyshop"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	pageSize := 0
	if raw := strings.TrimSpace(os.Getenv("PAGE_SIZE")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
		}
	}

	return Env{
		AppAddr:   appAddr,
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		MongoURI:  mongoURI,
		MongoDB:   mongoDB,
		JWTSecret: jwtSecret,
		PageSize:  pageSize,
	}
}
