package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"saferide/internal/models"
	"saferide/internal/services"
)

type memUserRepo struct{ users map[int]bool }

func (r *memUserRepo) Create(u *models.User) error                   { return nil }
func (r *memUserRepo) GetByID(id int) (*models.User, error) { return nil, sql.ErrNoRows }
func (r *memUserRepo) GetByEmail(email string) (*models.User, error) { return nil, sql.ErrNoRows }
func (r *memUserRepo) Update(u *models.User) error                   { return nil }
func (r *memUserRepo) UpdateLocation(id int, lat, lng float64) error { return nil }
func (r *memUserRepo) UpdatePassword(id int, hash string) error      { return nil }
func (r *memUserRepo) Delete(id int) error                           { return nil }
func (r *memUserRepo) List(limit, offset int) ([]*models.User, error) {
	return nil, nil
}
func (r *memUserRepo) Exists(id int) (bool, error) { return r.users[id], nil }
func (r *memUserRepo) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	return nil
}
func (r *memUserRepo) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	return nil, sql.ErrNoRows
}
func (r *memUserRepo) ClearRefresh(userID int) error { return nil }
func (r *memUserRepo) GetByRefreshToken(token string) (*models.User, error) {
	return nil, sql.ErrNoRows
}

type memChatRepo struct{ chats map[int]*models.Chat }

func (r *memChatRepo) FindOrCreate(a, b int) (*models.Chat, error) { return nil, nil }
func (r *memChatRepo) FindByMembers(a, b int) (*models.Chat, error) { return nil, nil }
func (r *memChatRepo) GetByID(id int) (*models.Chat, error) { return r.chats[id], nil }
func (r *memChatRepo) ListByUser(id int) ([]*models.Chat, error) { return nil, nil }
func (r *memChatRepo) ListAll(limit, o int) ([]*models.Chat, error) { return nil, nil }

type memMessageRepo struct{ messages []*models.Message }

func (r *memMessageRepo) Create(chatID, senderID int, text string) (*models.Message, error) {
	msg := &models.Message{
		ID:       len(r.messages) + 1,
		ChatID:   chatID,
		SenderID: senderID,
		Text:     text,
	}
	r.messages = append(r.messages, msg)
	return msg, nil
}
func (r *memMessageRepo) ListByChat(chatID int) ([]*models.Message, error) {
	var res []*models.Message
	for _, msg := range r.messages {
		if msg.ChatID == chatID {
			res = append(res, msg)
		}
	}
	return res, nil
}

type echoTranslator struct{}

func (echoTranslator) Translate(text, target string) (string, error) { return text, nil }

func newTestRouter() (*gin.Engine, *memMessageRepo) {
	gin.SetMode(gin.TestMode)

	userRepo := &memUserRepo{users: map[int]bool{1: true, 2: true}}
	chatRepo := &memChatRepo{chats: map[int]*models.Chat{
		1: {ID: 1, Members: []int{1, 2}},
	}}
	msgRepo := &memMessageRepo{}

	svc := services.NewMessageService(msgRepo, chatRepo, userRepo, echoTranslator{})
	h := NewMessageHandler(svc)

	r := gin.New()
	r.POST("/messages", h.SendMessage)
	r.GET("/messages/:chat_id", h.ListMessages)
	return r, msgRepo
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendMessageCreated(t *testing.T) {
	r, _ := newTestRouter()

	w := postJSON(t, r, "/messages", gin.H{"chatId": 1, "senderId": 1, "text": "Hello"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var msg models.Message
	if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Text != "Hello" {
		t.Fatalf("unexpected text: %q", msg.Text)
	}
}

func TestSendMessageMissingFields(t *testing.T) {
	r, repo := newTestRouter()

	cases := []gin.H{
		{"senderId": 1, "text": "Hello"},
		{"chatId": 1, "text": "Hello"},
		{"chatId": 1, "senderId": 1},
	}
	for _, body := range cases {
		w := postJSON(t, r, "/messages", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, w.Code)
		}
	}
	if len(repo.messages) != 0 {
		t.Fatalf("invalid requests must not create messages, got %d", len(repo.messages))
	}
}

func TestSendMessageUnknownChatOrSender(t *testing.T) {
	r, repo := newTestRouter()

	for _, body := range []gin.H{
		{"chatId": 42, "senderId": 1, "text": "Hello"},
		{"chatId": 1, "senderId": 99, "text": "Hello"},
	} {
		w := postJSON(t, r, "/messages", body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %v, got %d", body, w.Code)
		}
	}
	if len(repo.messages) != 0 {
		t.Fatalf("failed requests must not create messages, got %d", len(repo.messages))
	}
}

func TestListMessagesEmptyChat(t *testing.T) {
	r, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/messages/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var history []models.Message
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty list, got %d", len(history))
	}
}
