package services

import (
	"errors"
	"testing"
)

func newMessageServiceForTest(translator Translator) (*MessageService, *fakeChatRepo, *fakeMessageRepo) {
	chatRepo := newFakeChatRepo()
	msgRepo := newFakeMessageRepo()
	userRepo := newFakeUserRepo(1, 2)
	_, _ = chatRepo.FindOrCreate(1, 2) // chat id 1
	return NewMessageService(msgRepo, chatRepo, userRepo, translator), chatRepo, msgRepo
}

func TestSendStoresTextUnchangedForDefaultLanguage(t *testing.T) {
	translator := &fakeTranslator{result: "should not be used"}
	svc, _, _ := newMessageServiceForTest(translator)

	for _, lang := range []string{"", "en"} {
		msg, err := svc.Send(1, 1, "Hello", lang)
		if err != nil {
			t.Fatalf("Send err for lang %q: %v", lang, err)
		}
		if msg.Text != "Hello" {
			t.Fatalf("text changed for lang %q: %q", lang, msg.Text)
		}
	}
	if translator.calls != 0 {
		t.Fatalf("translator must not be called for default language, got %d calls", translator.calls)
	}
}

func TestSendTranslatesForOtherLanguage(t *testing.T) {
	translator := &fakeTranslator{result: "Hi there"}
	svc, _, _ := newMessageServiceForTest(translator)

	msg, err := svc.Send(1, 2, "Bonjour", "fr")
	if err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if msg.Text != "Hi there" {
		t.Fatalf("expected translated text, got %q", msg.Text)
	}
	if translator.calls != 1 {
		t.Fatalf("expected 1 translator call, got %d", translator.calls)
	}
}

func TestSendFallsBackWhenTranslationFails(t *testing.T) {
	translator := &fakeTranslator{err: errors.New("provider down")}
	svc, _, _ := newMessageServiceForTest(translator)

	msg, err := svc.Send(1, 1, "Bonjour", "fr")
	if err != nil {
		t.Fatalf("translation failure must not fail Send: %v", err)
	}
	if msg.Text != "Bonjour" {
		t.Fatalf("expected original text on fallback, got %q", msg.Text)
	}
}

func TestSendUnknownChat(t *testing.T) {
	svc, _, msgRepo := newMessageServiceForTest(&fakeTranslator{})

	if _, err := svc.Send(42, 1, "Hello", "en"); !errors.Is(err, ErrChatNotFound) {
		t.Fatalf("expected ErrChatNotFound, got %v", err)
	}
	if len(msgRepo.messages) != 0 {
		t.Fatalf("no message should be created, got %d", len(msgRepo.messages))
	}
}

func TestSendUnknownSender(t *testing.T) {
	svc, _, msgRepo := newMessageServiceForTest(&fakeTranslator{})

	if _, err := svc.Send(1, 99, "Hello", "en"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(msgRepo.messages) != 0 {
		t.Fatalf("no message should be created, got %d", len(msgRepo.messages))
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	translator := &fakeTranslator{result: "Hi there"}
	svc, _, _ := newMessageServiceForTest(translator)

	if _, err := svc.Send(1, 1, "Hello", "en"); err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if _, err := svc.Send(1, 2, "Bonjour", "fr"); err != nil {
		t.Fatalf("Send err: %v", err)
	}

	history, err := svc.List(1)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Text != "Hello" || history[1].Text != "Hi there" {
		t.Fatalf("unexpected order/content: %q, %q", history[0].Text, history[1].Text)
	}
}

func TestListUnknownChatReturnsEmpty(t *testing.T) {
	svc, _, _ := newMessageServiceForTest(&fakeTranslator{})

	history, err := svc.List(42)
	if err != nil {
		t.Fatalf("List for unknown chat must not fail: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d", len(history))
	}
}
