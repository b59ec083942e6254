package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/readlater/internal/bot"
	"github.com/fsdevblog/readlater/internal/config"
)

const testToken = "123:test"

// fakeTelegram минимальная реализация Bot API: getMe, getUpdates и sendMessage.
type fakeTelegram struct {
	m       sync.Mutex
	updates []string
	sent    []string
	sentCh  chan string
}

func newFakeTelegram(updates ...string) *fakeTelegram {
	return &fakeTelegram{updates: updates, sentCh: make(chan string, 16)}
}

func (f *fakeTelegram) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Read later","username":"readlater_bot"}}`)
	case strings.HasSuffix(r.URL.Path, "/getUpdates"):
		f.m.Lock()
		pending := f.updates
		f.updates = nil
		f.m.Unlock()
		if len(pending) == 0 {
			time.Sleep(20 * time.Millisecond)
		}
		fmt.Fprintf(w, `{"ok":true,"result":[%s]}`, strings.Join(pending, ","))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		text := r.FormValue("text")
		f.m.Lock()
		f.sent = append(f.sent, text)
		f.m.Unlock()
		f.sentCh <- text
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":100,"date":0,"chat":{"id":42,"type":"private"}}}`)
	default:
		http.NotFound(w, r)
	}
}

func tgUpdate(id int, text string) string {
	entities := ""
	if strings.HasPrefix(text, "/") {
		entities = fmt.Sprintf(`,"entities":[{"type":"bot_command","offset":0,"length":%d}]`, len(text))
	}
	return fmt.Sprintf(
		`{"update_id":%d,"message":{"message_id":%d,"date":0,"chat":{"id":42,"type":"private"},"text":%q%s}}`,
		id, id*10, text, entities,
	)
}

func testConfig(t *testing.T, dbType config.DBType) config.Config {
	t.Helper()
	l, _ := test.NewNullLogger()
	return config.Config{
		BotToken:       testToken,
		DBType:         dbType,
		DBPath:         filepath.Join(t.TempDir(), "articles.db"),
		HandlerTimeout: time.Second,
		PollTimeout:    0,
		Logger:         l,
	}
}

func TestApp_Run(t *testing.T) {
	tg := newFakeTelegram(
		tgUpdate(1, "/start"),
		tgUpdate(2, "https://example.com/post"),
		tgUpdate(3, "/get_article"),
	)
	srv := httptest.NewServer(tg)
	defer srv.Close()

	a, err := newApp(testConfig(t, config.DBTypeSQLite), srv.URL+"/bot%s/%s")
	require.NoError(t, err)
	assert.Equal(t, "readlater_bot", a.api.Self.UserName)

	ctx, cancel := context.WithCancel(t.Context())
	result := make(chan error, 1)
	go func() {
		result <- a.run(ctx)
	}()

	want := []string{bot.StartText, bot.SavedText, bot.ArticleText("https://example.com/post")}
	for i := range want {
		select {
		case text := <-tg.sentCh:
			assert.Equal(t, want[i], text)
		case <-time.After(5 * time.Second):
			require.FailNow(t, "reply was not sent", "waiting for %q", want[i])
		}
	}

	cancel()
	select {
	case runErr := <-result:
		require.NoError(t, runErr)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "app did not stop")
	}

	total, err := a.dbServices.LinkService.Count(t.Context())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestApp_HealthServerError(t *testing.T) {
	srv := httptest.NewServer(newFakeTelegram())
	defer srv.Close()

	conf := testConfig(t, config.DBTypeInMemory)
	conf.HealthAddress = "bad-address"
	a, err := newApp(conf, srv.URL+"/bot%s/%s")
	require.NoError(t, err)

	require.Error(t, a.run(t.Context()))
}

func TestNewApp_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)
	}))
	defer srv.Close()

	_, err := newApp(testConfig(t, config.DBTypeInMemory), srv.URL+"/bot%s/%s")
	require.Error(t, err, "bad token")

	_, err = newApp(testConfig(t, "postgres"), srv.URL+"/bot%s/%s")
	require.Error(t, err, "unknown storage")

	assert.Panics(t, func() {
		Must(nil, err)
	})
}
