package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/dto"
	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/services"
)

// SendChatMessageHandler godoc
// @Summary      Send a chat message
// @Description  Persists the user message, generates the assistant reply and returns it with the effective session id.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ChatMessageRequestDTO  true  "chat request"
// @Success      200   {object}  dto.ChatMessageReplyDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /chat/message [post]
func SendChatMessageHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ChatMessageRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		resp, chatErr := chatSvc.SendMessage(c.Request.Context(), req)
		if chatErr != nil {
			c.JSON(chatErr.StatusCode, dto.ErrorResponseDTO{Error: chatErr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// GetChatHistoryHandler godoc
// @Summary      Get chat history
// @Description  Returns up to limit messages for a farm in chronological order (created_at asc, id asc).
// @Tags         chat
// @Produce      json
// @Param        farm_id  query     string  true   "farm id"
// @Param        limit    query     int     false  "max messages (1-100, default 30)"
// @Success      200      {array}   dto.ChatMessageResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      404      {object}  dto.ErrorResponseDTO
// @Router       /chat/history [get]
func GetChatHistoryHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		farmID := c.Query("farm_id")
		if farmID == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

		msgs, chatErr := chatSvc.History(c.Request.Context(), farmID, limit)
		if chatErr != nil {
			c.JSON(chatErr.StatusCode, dto.ErrorResponseDTO{Error: chatErr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, msgs)
	}
}

// ClearChatHistoryHandler godoc
// @Summary      Clear chat history
// @Description  Deletes all chat messages (and sessions) for a farm.
// @Tags         chat
// @Produce      json
// @Param        farm_id  query     string  true  "farm id"
// @Success      200      {object}  dto.ClearHistoryResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      404      {object}  dto.ErrorResponseDTO
// @Router       /chat/history [delete]
func ClearChatHistoryHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		farmID := c.Query("farm_id")
		if farmID == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		deleted, chatErr := chatSvc.ClearHistory(c.Request.Context(), farmID)
		if chatErr != nil {
			c.JSON(chatErr.StatusCode, dto.ErrorResponseDTO{Error: chatErr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, dto.ClearHistoryResponseDTO{OK: true, Deleted: deleted})
	}
}
