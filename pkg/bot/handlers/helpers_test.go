package handlers

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	telegram "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// fakeTelegram records every Bot API call and answers each with an empty
// successful result.
type fakeTelegram struct {
	mu    sync.Mutex
	calls []apiCall
}

type apiCall struct {
	method string
	form   map[string]string
}

func newFakeTelegram() *fakeTelegram {
	return &fakeTelegram{}
}

func (f *fakeTelegram) Do(req *http.Request) (*http.Response, error) {
	form, err := readForm(req)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.calls = append(f.calls, apiCall{method: req.URL.Path[strings.LastIndex(req.URL.Path, "/")+1:], form: form})
	f.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"ok":true,"result":{}}`)),
		Header:     make(http.Header),
	}, nil
}

func readForm(req *http.Request) (map[string]string, error) {
	form := make(map[string]string)
	if req.Body == nil {
		return form, nil
	}
	defer req.Body.Close()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	mediaType, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return form, nil
	}
	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return form, nil
		}
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(part)
		if err != nil {
			return nil, err
		}
		form[part.FormName()] = string(data)
	}
}

// lastSent returns the most recent sendMessage call.
func (f *fakeTelegram) lastSent(t *testing.T) apiCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].method == "sendMessage" {
			return f.calls[i]
		}
	}
	t.Fatalf("no message was sent")
	return apiCall{}
}

func (f *fakeTelegram) lastMessageText(t *testing.T) string {
	t.Helper()
	return f.lastSent(t).form["text"]
}

func (f *fakeTelegram) lastReplyMarkup(t *testing.T) string {
	t.Helper()
	markup, ok := f.lastSent(t).form["reply_markup"]
	if !ok {
		t.Fatalf("last message has no reply markup")
	}
	return markup
}

func newTestTelegramBot(t *testing.T, client *fakeTelegram) *telegram.Bot {
	t.Helper()
	b, err := telegram.New("test-token",
		telegram.WithSkipGetMe(),
		telegram.WithHTTPClient(time.Second, client),
	)
	if err != nil {
		t.Fatalf("failed to create test bot: %v", err)
	}
	return b
}

func newTestUpdate(text string, userID int64) *models.Update {
	return &models.Update{
		Message: &models.Message{
			From: &models.User{ID: userID, FirstName: "Tester"},
			Chat: models.Chat{ID: userID, Type: models.ChatTypePrivate},
			Text: text,
		},
	}
}

func newTestCallbackUpdate(data string, userID, chatID int64, messageID int) *models.Update {
	return &models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   "callback-1",
			From: models.User{ID: userID, FirstName: "Tester"},
			Data: data,
			Message: models.MaybeInaccessibleMessage{
				Type: models.MaybeInaccessibleMessageTypeMessage,
				Message: &models.Message{
					ID:   messageID,
					Chat: models.Chat{ID: chatID, Type: models.ChatTypePrivate},
				},
			},
		},
	}
}
