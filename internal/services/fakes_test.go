package services

import (
	"database/sql"
	"fmt"
	"time"

	"saferide/internal/models"
)

// in-memory stand-ins for the repositories, enough for the service tests

type fakeUserRepo struct {
	users map[int]*models.User
}

func newFakeUserRepo(ids ...int) *fakeUserRepo {
	r := &fakeUserRepo{users: map[int]*models.User{}}
	for _, id := range ids {
		r.users[id] = &models.User{ID: id, Username: fmt.Sprintf("user%d", id)}
	}
	return r
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = len(r.users) + 1
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id int) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) Update(user *models.User) error { return nil }

func (r *fakeUserRepo) UpdateLocation(id int, latitude, longitude float64) error { return nil }

func (r *fakeUserRepo) UpdatePassword(id int, passwordHash string) error { return nil }

func (r *fakeUserRepo) Delete(id int) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*models.User, error) { return nil, nil }

func (r *fakeUserRepo) Exists(id int) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	return nil
}

func (r *fakeUserRepo) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) ClearRefresh(userID int) error { return nil }

func (r *fakeUserRepo) GetByRefreshToken(token string) (*models.User, error) {
	return nil, sql.ErrNoRows
}

type fakeChatRepo struct {
	nextID int
	chats  map[[2]int]*models.Chat
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{nextID: 1, chats: map[[2]int]*models.Chat{}}
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func (r *fakeChatRepo) FindOrCreate(memberA, memberB int) (*models.Chat, error) {
	key := pairKey(memberA, memberB)
	if chat, ok := r.chats[key]; ok {
		return chat, nil
	}
	chat := &models.Chat{
		ID:        r.nextID,
		Members:   []int{key[0], key[1]},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.nextID++
	r.chats[key] = chat
	return chat, nil
}

func (r *fakeChatRepo) FindByMembers(memberA, memberB int) (*models.Chat, error) {
	chat, ok := r.chats[pairKey(memberA, memberB)]
	if !ok {
		return nil, nil
	}
	return chat, nil
}

func (r *fakeChatRepo) GetByID(id int) (*models.Chat, error) {
	for _, chat := range r.chats {
		if chat.ID == id {
			return chat, nil
		}
	}
	return nil, nil
}

func (r *fakeChatRepo) ListByUser(userID int) ([]*models.Chat, error) {
	var res []*models.Chat
	for _, chat := range r.chats {
		if chat.Members[0] == userID || chat.Members[1] == userID {
			res = append(res, chat)
		}
	}
	return res, nil
}

func (r *fakeChatRepo) ListAll(limit, offset int) ([]*models.Chat, error) {
	var res []*models.Chat
	for _, chat := range r.chats {
		res = append(res, chat)
	}
	return res, nil
}

type fakeMessageRepo struct {
	nextID   int
	messages []*models.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{nextID: 1}
}

func (r *fakeMessageRepo) Create(chatID, senderID int, text string) (*models.Message, error) {
	msg := &models.Message{
		ID:        r.nextID,
		ChatID:    chatID,
		SenderID:  senderID,
		Text:      text,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.nextID++
	r.messages = append(r.messages, msg)
	return msg, nil
}

func (r *fakeMessageRepo) ListByChat(chatID int) ([]*models.Message, error) {
	var res []*models.Message
	for _, msg := range r.messages {
		if msg.ChatID == chatID {
			res = append(res, msg)
		}
	}
	return res, nil
}

type fakeTranslator struct {
	result string
	err    error
	calls  int
}

func (t *fakeTranslator) Translate(text, targetLanguage string) (string, error) {
	t.calls++
	if t.err != nil {
		return "", t.err
	}
	return t.result, nil
}
