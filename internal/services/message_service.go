package services

import (
	"log"

	"saferide/internal/models"
	"saferide/internal/repositories"
)

// DefaultLanguage is the language messages are assumed to arrive in; no
// translation happens for it.
const DefaultLanguage = "en"

// Translator is the boundary to the external translation provider. Any
// failure comes back as a plain error and is treated as "translation
// unavailable" here.
type Translator interface {
	Translate(text, targetLanguage string) (string, error)
}

type MessageService struct {
	repo       repositories.MessageRepository
	chatRepo   repositories.ChatRepository
	userRepo   repositories.UserRepository
	translator Translator
}

func NewMessageService(
	repo repositories.MessageRepository,
	chatRepo repositories.ChatRepository,
	userRepo repositories.UserRepository,
	translator Translator,
) *MessageService {
	return &MessageService{
		repo:       repo,
		chatRepo:   chatRepo,
		userRepo:   userRepo,
		translator: translator,
	}
}

// Send validates the chat and sender, translates the text into
// senderLanguage when one is given, and appends the message. Translation is
// best-effort: the message is never lost because the provider is down, the
// original text is stored instead.
func (s *MessageService) Send(chatID, senderID int, text, senderLanguage string) (*models.Message, error) {
	chat, err := s.chatRepo.GetByID(chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}

	ok, err := s.userRepo.Exists(senderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	stored := text
	if senderLanguage != "" && senderLanguage != DefaultLanguage {
		translated, err := s.translator.Translate(text, senderLanguage)
		if err != nil {
			log.Printf("[messages][send] translation unavailable, storing original: chat_id=%d target=%s err=%v", chatID, senderLanguage, err)
		} else {
			stored = translated
		}
	}

	return s.repo.Create(chatID, senderID, stored)
}

// List returns the chat history oldest first. An unknown chat id yields an
// empty history, not an error.
func (s *MessageService) List(chatID int) ([]*models.Message, error) {
	return s.repo.ListByChat(chatID)
}
