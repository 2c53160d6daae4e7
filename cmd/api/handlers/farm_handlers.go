package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/dto"
	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/services"
)

// CreateFarmHandler godoc
// @Summary      Create a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Param        body  body      dto.FarmCreateRequestDTO  true  "farm"
// @Success      200   {object}  dto.FarmResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /farms [post]
func CreateFarmHandler(farmSvc *services.FarmService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FarmCreateRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, svcErr := farmSvc.Create(c.Request.Context(), req)
		if svcErr != nil {
			c.JSON(svcErr.StatusCode, dto.ErrorResponseDTO{Error: svcErr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// GetFarmHandler godoc
// @Summary      Get a farm
// @Tags         farms
// @Produce      json
// @Param        id   path      string  true  "farm id"
// @Success      200  {object}  dto.FarmResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /farms/{id} [get]
func GetFarmHandler(farmSvc *services.FarmService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, svcErr := farmSvc.Get(c.Request.Context(), c.Param("id"))
		if svcErr != nil {
			c.JSON(svcErr.StatusCode, dto.ErrorResponseDTO{Error: svcErr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
