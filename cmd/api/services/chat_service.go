package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TheKalyaniMohite/TableGrapeAgent/advisor"
	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/dto"
	"github.com/TheKalyaniMohite/TableGrapeAgent/internal/logger"
	"github.com/TheKalyaniMohite/TableGrapeAgent/config"
	"github.com/TheKalyaniMohite/TableGrapeAgent/models"
	"github.com/TheKalyaniMohite/TableGrapeAgent/repositories"
	"github.com/TheKalyaniMohite/TableGrapeAgent/weather"
)

// ChatError carries the HTTP status and stable error code a handler
// should return.
type ChatError struct {
	StatusCode int
	ErrorCode  string
	Cause      error
}

func (e *ChatError) Error() string {
	if e == nil {
		return "chat_failed"
	}
	return e.ErrorCode
}

// ReplyFunc produces an assistant reply. Injected so tests can run
// the send flow without a model behind it.
type ReplyFunc func(ctx context.Context, userMessage string, farmCtx *advisor.FarmContext, lang string) (string, error)

type ChatService struct {
	farms      *repositories.FarmRepository
	blocks     *repositories.BlockRepository
	sessions   *repositories.ChatSessionRepository
	messages   *repositories.ChatMessageRepository
	status     *repositories.CropStatusRepository
	scouting   *repositories.ScoutingLogRepository
	irrigation *repositories.IrrigationLogRepository
	brix       *repositories.BrixSampleRepository
	forecasts  *weather.Client
	reply      ReplyFunc
}

func NewChatService(
	farms *repositories.FarmRepository,
	blocks *repositories.BlockRepository,
	sessions *repositories.ChatSessionRepository,
	messages *repositories.ChatMessageRepository,
	status *repositories.CropStatusRepository,
	scouting *repositories.ScoutingLogRepository,
	irrigation *repositories.IrrigationLogRepository,
	brix *repositories.BrixSampleRepository,
	forecasts *weather.Client,
	reply ReplyFunc,
) *ChatService {
	if reply == nil {
		reply = advisor.Reply
	}
	return &ChatService{
		farms:      farms,
		blocks:     blocks,
		sessions:   sessions,
		messages:   messages,
		status:     status,
		scouting:   scouting,
		irrigation: irrigation,
		brix:       brix,
		forecasts:  forecasts,
		reply:      reply,
	}
}

// SendMessage persists the user message, produces a reply and persists
// it, returning the reply together with the effective session id. The
// session id in the request is optional; a missing one is minted here
// and becomes the client's new source of truth.
func (s *ChatService) SendMessage(ctx context.Context, req dto.ChatMessageRequestDTO) (dto.ChatMessageReplyDTO, *ChatError) {
	farm, err := s.farms.FindByID(ctx, req.FarmID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return dto.ChatMessageReplyDTO{}, &ChatError{StatusCode: http.StatusNotFound, ErrorCode: "farm_not_found", Cause: err}
		}
		return dto.ChatMessageReplyDTO{}, &ChatError{StatusCode: http.StatusInternalServerError, ErrorCode: "chat_failed", Cause: err}
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
		logger.InfoWithFields("minted new chat session", logger.Fields{
			"farm_id":    req.FarmID,
			"session_id": sessionID,
		})
	}
	if err := s.sessions.Ensure(ctx, sessionID, req.FarmID); err != nil {
		return dto.ChatMessageReplyDTO{}, &ChatError{StatusCode: http.StatusInternalServerError, ErrorCode: "chat_failed", Cause: err}
	}

	lang := req.Lang
	if lang == "" {
		lang = farm.PreferredLanguage
	}
	if lang == "" {
		lang = config.GetConfig().Chat.DefaultLanguage
	}
	if lang == "" {
		lang = "en"
	}

	// Persist the user message before generating the reply so it gets
	// the earlier timestamp and the stable order holds on re-fetch.
	userMsg := &models.ChatMessage{
		FarmID:    req.FarmID,
		SessionID: sessionID,
		Role:      "user",
		Content:   req.Message,
	}
	if err := s.messages.Insert(ctx, userMsg); err != nil {
		return dto.ChatMessageReplyDTO{}, &ChatError{StatusCode: http.StatusInternalServerError, ErrorCode: "chat_failed", Cause: err}
	}

	replyText := s.replyFor(ctx, farm, req.Message, lang)

	assistantMsg := &models.ChatMessage{
		FarmID:    req.FarmID,
		SessionID: sessionID,
		Role:      "assistant",
		Content:   replyText,
	}
	if err := s.messages.Insert(ctx, assistantMsg); err != nil {
		return dto.ChatMessageReplyDTO{}, &ChatError{StatusCode: http.StatusInternalServerError, ErrorCode: "chat_failed", Cause: err}
	}

	return dto.ChatMessageReplyDTO{Reply: replyText, SessionID: sessionID}, nil
}

// replyFor picks an intent shortcut when one applies, otherwise asks
// the model with farm context attached. Any model failure degrades to
// the fixed fallback string; a send never fails because of the model.
func (s *ChatService) replyFor(ctx context.Context, farm *models.Farm, message, lang string) string {
	switch {
	case advisor.IsWhatsNew(message):
		return advisor.WhatsNewReply(lang)
	case advisor.IsAcknowledgement(message):
		return advisor.AckReply(lang)
	case advisor.IsGreeting(message):
		return advisor.GreetingReply(lang)
	}

	farmCtx := s.buildFarmContext(ctx, farm)

	replyText, err := s.reply(ctx, message, farmCtx, lang)
	if err != nil || replyText == "" {
		logger.WarnWithFields("advisor unavailable, using fallback reply", logger.Fields{
			"farm_id": farm.ID,
			"error":   fmt.Sprint(err),
		})
		return advisor.FallbackReply(lang)
	}
	return replyText
}

// History returns up to limit messages for the farm in chronological
// order with roles normalized to lowercase.
func (s *ChatService) History(ctx context.Context, farmID string, limit int) ([]dto.ChatMessageResponseDTO, *ChatError) {
	if _, err := s.farms.FindByID(ctx, farmID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &ChatError{StatusCode: http.StatusNotFound, ErrorCode: "farm_not_found", Cause: err}
		}
		return nil, &ChatError{StatusCode: http.StatusInternalServerError, ErrorCode: "chat_failed", Cause: err}
	}

	if limit <= 0 {
		limit = config.GetConfig().Chat.HistoryLimit
	}
	if limit <= 0 {
		limit = 30
	}
	if limit > 100 {
		limit = 100
	}

	msgs, err := s.messages.ListByFarm(ctx, farmID, limit)
	if err != nil {
		return nil, &ChatError{StatusCode: http.StatusInternalServerError, ErrorCode: "chat_failed", Cause: err}
	}

	out := make([]dto.ChatMessageResponseDTO, 0, len(msgs))
	for _, m := range msgs {
		role := strings.ToLower(m.Role)
		if role != "user" && role != "assistant" {
			role = "assistant"
		}
		out = append(out, dto.ChatMessageResponseDTO{
			ID:        m.ID,
			FarmID:    m.FarmID,
			SessionID: m.SessionID,
			Role:      role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return out, nil
}

// ClearHistory deletes the farm's messages and sessions. The returned
// count is the number of messages removed.
func (s *ChatService) ClearHistory(ctx context.Context, farmID string) (int64, *ChatError) {
	if _, err := s.farms.FindByID(ctx, farmID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, &ChatError{StatusCode: http.StatusNotFound, ErrorCode: "farm_not_found", Cause: err}
		}
		return 0, &ChatError{StatusCode: http.StatusInternalServerError, ErrorCode: "chat_failed", Cause: err}
	}

	deleted, err := s.messages.DeleteByFarm(ctx, farmID)
	if err != nil {
		return 0, &ChatError{StatusCode: http.StatusInternalServerError, ErrorCode: "chat_failed", Cause: err}
	}
	if _, err := s.sessions.DeleteByFarm(ctx, farmID); err != nil {
		logger.WarnWithFields("failed to purge chat sessions", logger.Fields{
			"farm_id": farmID,
			"error":   err.Error(),
		})
	}

	logger.InfoWithFields("cleared chat history", logger.Fields{
		"farm_id": farmID,
		"deleted": deleted,
	})
	return deleted, nil
}
