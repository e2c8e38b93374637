package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	userRepo "inkwell/database/repository/user"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthUserMiddleware validates the bearer token and ensures the subject is
// an existing, non-disabled user. The user-active check is cached in Redis to
// avoid a DB lookup per request; a cache outage degrades to DB lookups.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		// Retrieve token from header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		tokenData, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		cacheKey := utils.AuthCachePrefix + tokenData.UserID.Hex()

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := true
		if authCache == nil {
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
			cacheEnabled = false
		}

		if cacheEnabled {
			cached, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && cached == "active" {
				setIdentity(c, tokenData)
				c.Next()
				return
			} else if err != nil && err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: confirm the user still exists and is not disabled.
		usr, err := repo.GetByID(tokenData.UserID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}
		if usr.Disabled {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Inactive user"})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, "active", utils.AuthCacheTTL).Err()
		}

		setIdentity(c, tokenData)
		c.Next()
	}
}

func setIdentity(c *gin.Context, tokenData *utils.TokenData) {
	c.Set("tokenData", tokenData)
	c.Set("userID", tokenData.UserID)
	c.Set("username", tokenData.Username)
}

// GetTokenData retrieves the identity claims set by JWTAuthUserMiddleware.
func GetTokenData(c *gin.Context) (*utils.TokenData, bool) {
	val, ok := c.Get("tokenData")
	if !ok {
		return nil, false
	}
	tokenData, ok := val.(*utils.TokenData)
	return tokenData, ok
}
