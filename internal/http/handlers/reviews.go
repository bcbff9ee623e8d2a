package handlers

import (
	"net/http"
	"strings"

	"toyshop/internal/auth"
	"toyshop/internal/domain/models"
	"toyshop/internal/http/middleware"
	"toyshop/internal/repositories"
	"toyshop/internal/services"
	"toyshop/internal/utils"

	"github.com/gin-gonic/gin"
)

func reviewService(c *gin.Context) services.ReviewService {
	return services.ReviewService{
		Reviews:   repositories.ReviewRepository{},
		Users:     repositories.UserRepository{},
		Toys:      repositories.ToyRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/review (authenticated) — always scoped to the requesting user.
func GetReviews(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	docs, err := reviewService(c).Query(c.Request.Context(), principal.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

type reviewPayload struct {
	AboutToyID string `json:"aboutToyId" binding:"required"`
	Txt        string `json:"txt"`
}

// POST /api/review (authenticated) — persists the review, then answers with
// the joined shape and a refreshed login cookie.
func AddReview(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var payload reviewPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	review, toy, err := reviewService(c).Add(c.Request.Context(), principal.ID, strings.TrimSpace(payload.AboutToyID), payload.Txt)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if refreshed, err := cfg.Tokens.Issue(principal); err == nil {
		c.SetCookie(auth.LoginCookie, refreshed, 24*60*60, "/", "", false, true)
	} else {
		utils.LogEvent(middleware.GetRequestID(c), "review", "add", "cannot refresh login token: "+err.Error())
	}

	c.JSON(http.StatusCreated, gin.H{
		"_id":       review.ID,
		"txt":       review.Txt,
		"createdAt": review.ID.Timestamp().UnixMilli(),
		"byUser": models.ReviewAuthor{
			UserID:   review.ByUserID,
			Fullname: principal.Fullname,
			IsAdmin:  principal.IsAdmin,
		},
		"aboutToy": models.ReviewToy{
			ToyID:   toy.ID,
			Name:    toy.Name,
			Price:   toy.Price,
			InStock: toy.InStock,
		},
	})
}

// DELETE /api/review/:id (owner or admin). A removed count of 0 means the
// review did not exist or was not ours; that is reported, not failed.
func DeleteReview(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	removed, err := reviewService(c).Remove(c.Request.Context(), c.Param("id"), principal.ID, principal.IsAdmin)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
