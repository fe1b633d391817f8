package v1

import (
	"net/http"

	"github.com/jobbuddy/backend/internal/delivery/http/response"
	"github.com/jobbuddy/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

func NewMatchHandler(r *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	r.GET("/matches", handler.GetMatches)
}

// GetMatches godoc
// @Summary      Get job matches
// @Description  Search live postings at the caller's preferred companies and return scored matches, best first
// @Tags         matches
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobMatch}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /matches [get]
// @Security     BearerAuth
func (h *MatchHandler) GetMatches(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	matches, err := h.matchUC.GetMatches(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matches retrieved", matches)
}
