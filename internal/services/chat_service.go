package services

import (
	"errors"

	"saferide/internal/models"
	"saferide/internal/repositories"
)

var (
	ErrChatNotFound = errors.New("chat not found")
	ErrUserNotFound = errors.New("user not found")
	ErrSelfChat     = errors.New("cannot create chat with yourself")
)

// ChatService owns chat identity: every unordered user pair has at most one
// chat, and all creation goes through FindOrCreate.
type ChatService struct {
	repo     repositories.ChatRepository
	userRepo repositories.UserRepository
}

func NewChatService(repo repositories.ChatRepository, userRepo repositories.UserRepository) *ChatService {
	return &ChatService{repo: repo, userRepo: userRepo}
}

func (s *ChatService) FindOrCreate(memberA, memberB int) (*models.Chat, error) {
	if memberA == memberB {
		return nil, ErrSelfChat
	}
	for _, id := range []int{memberA, memberB} {
		ok, err := s.userRepo.Exists(id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrUserNotFound
		}
	}
	return s.repo.FindOrCreate(memberA, memberB)
}

func (s *ChatService) Find(memberA, memberB int) (*models.Chat, error) {
	chat, err := s.repo.FindByMembers(memberA, memberB)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, ErrChatNotFound
	}
	return chat, nil
}

func (s *ChatService) ListForUser(userID int) ([]*models.Chat, error) {
	return s.repo.ListByUser(userID)
}

func (s *ChatService) ListAll(limit, offset int) ([]*models.Chat, error) {
	return s.repo.ListAll(limit, offset)
}
