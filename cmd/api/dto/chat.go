package dto

import "time"

type SendMessageRequestDTO struct {
	Query string `json:"query" binding:"required" example:"What foods are recommended during pregnancy?"`
}

type SendMessageResponseDTO struct {
	Bot string `json:"bot"`
}

type NewChatResponseDTO struct {
	ChatID string `json:"chat_id"`
}

type ChatSummaryDTO struct {
	ChatID string `json:"chat_id"`
	Title  string `json:"title"`
}

type MessageDTO struct {
	Role string `json:"role" example:"user"`
	Text string `json:"text"`
}

type ChatSessionDTO struct {
	ChatID    string       `json:"chat_id"`
	Title     string       `json:"title"`
	CreatedAt time.Time    `json:"created_at"`
	Messages  []MessageDTO `json:"messages"`
}

type TitleUpdateRequestDTO struct {
	Title string `json:"title" binding:"required"`
}
