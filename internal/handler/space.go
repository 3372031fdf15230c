package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spacerhq/spacer-backend/internal/repository"
	"github.com/spacerhq/spacer-backend/internal/utils"
)

// SpaceHandler serves space creation and listing.
type SpaceHandler struct {
	Spaces SpaceStore
}

func NewSpaceHandler(spaces SpaceStore) *SpaceHandler {
	return &SpaceHandler{Spaces: spaces}
}

type addSpaceReq struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Location     string      `json:"location"`
	PricePerHour json.Number `json:"price_per_hour"`
	OwnerID      uint64      `json:"owner_id"`
}

// AddSpace handles POST /addspaces. All five fields are required; absent or
// empty ones produce a 400 envelope instead of an unhandled fault. The price
// accepts any JSON number and is stored in its shortest decimal form.
func (h *SpaceHandler) AddSpace(c echo.Context) error {
	var req addSpaceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Location = strings.TrimSpace(req.Location)
	if req.Name == "" || req.Description == "" || req.Location == "" ||
		req.PricePerHour == "" || req.OwnerID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Missing required fields"})
	}
	price, err := req.PricePerHour.Float64()
	if err != nil || price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid price_per_hour"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	s := &repository.Space{
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		PricePerHour: strconv.FormatFloat(price, 'f', -1, 64),
		OwnerID:      req.OwnerID,
	}
	if err := h.Spaces.Create(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Could not create space"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "message": "Space added successfully"})
}

// GetSpaces handles GET /getspaces. Prices serialize as trimmed decimal
// strings ("25.5", not "25.50") and created_at as a plain datetime string.
func (h *SpaceHandler) GetSpaces(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	spaces, err := h.Spaces.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Could not load spaces"})
	}
	out := make([]echo.Map, 0, len(spaces))
	for _, s := range spaces {
		out = append(out, echo.Map{
			"id":             s.ID,
			"name":           s.Name,
			"description":    s.Description,
			"location":       s.Location,
			"price_per_hour": utils.FormatPrice(s.PricePerHour),
			"owner_id":       s.OwnerID,
			"created_at":     s.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "spaces": out})
}
