package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"toyshop/internal/domain"
	"toyshop/internal/domain/models"
	"toyshop/internal/http/middleware"
	"toyshop/internal/repositories"
	"toyshop/internal/services"
	"toyshop/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func toyService(c *gin.Context) services.ToyService {
	return services.ToyService{
		Toys:      repositories.ToyRepository{},
		PageSize:  cfg.PageSize,
		RequestID: middleware.GetRequestID(c),
	}
}

// parseToyFilter normalizes the loose query string into a typed filter.
// pageIdx and sortDir parse permissively (bad input falls back to defaults);
// an unparseable inStock is a hard 400 so the flag never silently disappears.
func parseToyFilter(c *gin.Context) (domain.ToyFilter, bool) {
	f := domain.ToyFilter{
		Txt:      strings.TrimSpace(c.Query("txt")),
		PageSize: cfg.PageSize,
	}

	if raw := strings.TrimSpace(c.Query("inStock")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "inStock must be a boolean", err)
			return f, false
		}
		f.InStock = &v
	}

	for _, raw := range c.QueryArray("labels") {
		f.Labels = append(f.Labels, utils.SplitList(raw)...)
	}

	if raw := strings.TrimSpace(c.Query("pageIdx")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			f.PageIdx = n
		}
	}

	f.Sort.Field = strings.TrimSpace(c.Query("sortBy"))
	f.Sort.Dir = 1
	if raw := strings.TrimSpace(c.Query("sortDir")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			f.Sort.Dir = n
		}
	}

	return f, true
}

// GET /api/toy?txt=&inStock=&labels=&pageIdx=&sortBy=&sortDir=
func GetToys(c *gin.Context) {
	filter, ok := parseToyFilter(c)
	if !ok {
		return
	}

	page, err := toyService(c).Query(c.Request.Context(), filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/toy/:id
func GetToyByID(c *gin.Context) {
	toy, err := toyService(c).GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toy)
}

type toyPayload struct {
	Name    string          `json:"name" binding:"required"`
	Price   float64         `json:"price" binding:"required"`
	Labels  []string        `json:"labels"`
	InStock *bool           `json:"inStock"`
	Msgs    []models.ToyMsg `json:"msgs"`
}

// POST /api/toy (admin)
func AddToy(c *gin.Context) {
	var payload toyPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	// inStock from the payload is deliberately ignored: new toys always
	// start in stock.
	toy, err := toyService(c).Add(c.Request.Context(), models.Toy{
		Name:   strings.TrimSpace(payload.Name),
		Price:  payload.Price,
		Labels: payload.Labels,
		Msgs:   payload.Msgs,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toy)
}

type toyUpdatePayload struct {
	ID     string   `json:"_id" binding:"required"`
	Name   string   `json:"name" binding:"required"`
	Price  float64  `json:"price" binding:"required"`
	Labels []string `json:"labels"`
}

// PUT /api/toy/:id (admin)
func UpdateToy(c *gin.Context) {
	var payload toyUpdatePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	id, err := bson.ObjectIDFromHex(payload.ID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid toy id", err)
		return
	}

	toy, err := toyService(c).Update(c.Request.Context(), models.Toy{
		ID:     id,
		Name:   strings.TrimSpace(payload.Name),
		Price:  payload.Price,
		Labels: payload.Labels,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toy)
}

// DELETE /api/toy/:id (admin)
func RemoveToy(c *gin.Context) {
	if err := toyService(c).Remove(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type toyMsgPayload struct {
	Txt string `json:"txt"`
}

// POST /api/toy/:id/msg (authenticated)
func AddToyMsg(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "login required", nil)
		return
	}

	var payload toyMsgPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	msg, err := toyService(c).AddMsg(c.Request.Context(), c.Param("id"), payload.Txt, principal.ID, principal.Fullname)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// DELETE /api/toy/:id/msg/:msgId (authenticated)
func RemoveToyMsg(c *gin.Context) {
	msgID := c.Param("msgId")
	if err := toyService(c).RemoveMsg(c.Request.Context(), c.Param("id"), msgID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removedMsgId": msgID})
}
