package controllers

import (
	"github.com/luisgarciam27/demo-churre/pkg/resp"
	"github.com/luisgarciam27/demo-churre/services"

	"github.com/gin-gonic/gin"
)

type RecommendController struct{ Svc *services.RecommendService }

func NewRecommendController(s *services.RecommendService) *RecommendController {
	return &RecommendController{Svc: s}
}

// POST /recommend: el "Churre IA"; nunca devuelve error al comensal,
// en el peor caso responde la disculpa fija con lista vacía
func (h *RecommendController) Recommend(c *gin.Context) {
	var req struct {
		Input string `json:"input" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.Svc.Recommend(c.Request.Context(), req.Input))
}
