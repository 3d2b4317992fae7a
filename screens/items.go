package screens

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/positnow_mobile/middlewares"
	"github.com/mmdatafocus/positnow_mobile/models"
	"github.com/mmdatafocus/positnow_mobile/utils"
)

type ItemView struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	SellingPrice string `json:"sellingPrice"`
}

type ItemsResponse struct {
	Items  []ItemView `json:"items"`
	Footer string     `json:"footer"`
}

func itemView(i models.Item) ItemView {
	return ItemView{
		ID:           i.ID.String(),
		Code:         i.Code,
		Name:         i.Name,
		SellingPrice: utils.FormatMoney(i.SellingPrice),
	}
}

func itemViews(items []models.Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, i := range items {
		views = append(views, itemView(i))
	}
	return views
}

// Items serves the All Items screen, filtered by ?q= on code or name.
func (h *Handler) Items() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middlewares.CurrentSession(c)
		items, err := h.API.GetAllItems(c.Request.Context(), sess)
		if err != nil {
			h.fail(c, "Items", "Failed to load items. Please try again.", err, gin.H{"items": []ItemView{}, "footer": countText(0, "item")})
			return
		}
		filtered := models.SearchItems(items, c.Query("q"))
		c.JSON(http.StatusOK, ItemsResponse{
			Items:  itemViews(filtered),
			Footer: countText(len(filtered), "item"),
		})
	}
}
