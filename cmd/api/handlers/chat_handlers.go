package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"maternal-chat/cmd/api/dto"
	"maternal-chat/cmd/api/services"
)

// NewChatHandler godoc
// @Summary      Create a chat session
// @Description  Creates an empty chat session and returns its id.
// @Tags         chat
// @Produce      json
// @Success      200  {object}  dto.NewChatResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /chat/new [post]
func NewChatHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := chatSvc.NewChat(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.NewChatResponseDTO{ChatID: id})
	}
}

// SendMessageHandler godoc
// @Summary      Send a message
// @Description  Answers a user query with retrieved maternal-health context. A chat_id of "null", "undefined" or "" creates a new session transparently.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        chat_id  path      string                    true  "chat id or sentinel"
// @Param        body     body      dto.SendMessageRequestDTO true  "user query"
// @Success      200      {object}  dto.SendMessageResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      429      {object}  dto.ErrorResponseDTO
// @Failure      500      {object}  dto.ErrorResponseDTO
// @Router       /chat/{chat_id}/send [post]
func SendMessageHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SendMessageRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		target, err := services.ResolveChatTarget(c.Param("chat_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Invalid chat ID"})
			return
		}

		bot, _, err := chatSvc.Send(c.Request.Context(), target, req.Query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.SendMessageResponseDTO{Bot: bot})
	}
}

// GetChatHandler godoc
// @Summary      Fetch a chat session
// @Tags         chat
// @Produce      json
// @Param        chat_id  path      string  true  "chat id"
// @Success      200      {object}  dto.ChatSessionDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Failure      404      {object}  dto.ErrorResponseDTO
// @Router       /chat/{chat_id} [get]
func GetChatHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := chatSvc.GetChat(c.Request.Context(), c.Param("chat_id"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidChatID):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Invalid chat ID"})
			case errors.Is(err, services.ErrChatNotFound):
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "chat not found"})
			default:
				c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// ListChatsHandler godoc
// @Summary      List chat sessions
// @Description  All sessions ordered by creation time, newest first.
// @Tags         chat
// @Produce      json
// @Success      200  {array}   dto.ChatSummaryDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /chats [get]
func ListChatsHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		chats, err := chatSvc.ListChats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, chats)
	}
}

// UpdateTitleHandler godoc
// @Summary      Update a chat title
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        chat_id  path      string                    true  "chat id"
// @Param        body     body      dto.TitleUpdateRequestDTO true  "new title"
// @Success      200      {object}  dto.StatusResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Router       /chat/{chat_id}/title [put]
func UpdateTitleHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TitleUpdateRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		if err := chatSvc.UpdateTitle(c.Request.Context(), c.Param("chat_id"), req.Title); err != nil {
			if errors.Is(err, services.ErrInvalidChatID) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Invalid chat ID"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.StatusResponseDTO{Status: "updated"})
	}
}

// DeleteChatHandler godoc
// @Summary      Delete a chat session
// @Tags         chat
// @Produce      json
// @Param        chat_id  path      string  true  "chat id"
// @Success      200      {object}  dto.StatusResponseDTO
// @Failure      400      {object}  dto.ErrorResponseDTO
// @Router       /chat/{chat_id} [delete]
func DeleteChatHandler(chatSvc *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := chatSvc.DeleteChat(c.Request.Context(), c.Param("chat_id")); err != nil {
			if errors.Is(err, services.ErrInvalidChatID) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Invalid chat ID"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.StatusResponseDTO{Status: "deleted"})
	}
}
