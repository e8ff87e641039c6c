package mailer

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"notice.md": &fstest.MapFile{
			Data: []byte("---\nSubject: Hello {{.Name}}\n---\nHi **{{md .Name}}**\n"),
		},
		"plain.md": &fstest.MapFile{Data: []byte("No frontmatter here.\n")},
	}
}

func newTestMailer(s Sender) *Mailer {
	return New(s, NewRenderer(testFS()), Config{DefaultLayout: "base.html", FallbackSubject: "Notification"})
}

func TestMailer_Send(t *testing.T) {
	t.Parallel()

	t.Run("renders and returns id", func(t *testing.T) {
		t.Parallel()

		s := &MockSender{}
		s.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
			return e.To[0] == "office@example.com" &&
				e.Subject == "Hello Jane" &&
				e.ReplyTo == "jane@example.com" &&
				e.BCC[0] == "audit@example.com" &&
				assert.ObjectsAreEqual("<html><body><p>Hi <strong>Jane</strong></p>\n</body></html>", e.HTML) &&
				e.Text == "Hi **Jane**\n"
		})).Return("msg_1", nil).Once()

		id, err := newTestMailer(s).Send(context.Background(), SendParams{
			To:       []string{"office@example.com"},
			Template: "notice.md",
			Data:     map[string]string{"Name": "Jane"},
			ReplyTo:  "jane@example.com",
			BCC:      []string{"audit@example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, "msg_1", id)
		s.AssertExpectations(t)
	})

	t.Run("subject and text overrides win", func(t *testing.T) {
		t.Parallel()

		s := &MockSender{}
		s.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
			return e.Subject == "Custom" && e.Text == "plain body"
		})).Return("msg_2", nil).Once()

		_, err := newTestMailer(s).Send(context.Background(), SendParams{
			To:       []string{"a@example.com"},
			Template: "notice.md",
			Data:     map[string]string{"Name": "x"},
			Subject:  "Custom",
			Text:     "plain body",
		})
		require.NoError(t, err)
		s.AssertExpectations(t)
	})

	t.Run("fallback subject", func(t *testing.T) {
		t.Parallel()

		s := &MockSender{}
		s.On("Send", mock.Anything, mock.MatchedBy(func(e *Email) bool {
			return e.Subject == "Notification"
		})).Return("msg_3", nil).Once()

		_, err := newTestMailer(s).Send(context.Background(), SendParams{
			To:       []string{"a@example.com"},
			Template: "plain.md",
		})
		require.NoError(t, err)
		s.AssertExpectations(t)
	})

	t.Run("no recipient", func(t *testing.T) {
		t.Parallel()

		s := &MockSender{}
		_, err := newTestMailer(s).Send(context.Background(), SendParams{Template: "notice.md"})
		require.ErrorIs(t, err, ErrNoRecipient)
		s.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("missing template", func(t *testing.T) {
		t.Parallel()

		s := &MockSender{}
		_, err := newTestMailer(s).Send(context.Background(), SendParams{
			To:       []string{"a@example.com"},
			Template: "nope.md",
		})
		require.ErrorIs(t, err, ErrRenderFailed)
		require.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("provider failure keeps reason", func(t *testing.T) {
		t.Parallel()

		s := &MockSender{}
		s.On("Send", mock.Anything, mock.Anything).Return("", errors.New("domain not verified")).Once()

		_, err := newTestMailer(s).Send(context.Background(), SendParams{
			To:       []string{"a@example.com"},
			Template: "notice.md",
			Data:     map[string]string{"Name": "x"},
		})
		require.ErrorIs(t, err, ErrSendFailed)

		var sendErr *SendError
		require.ErrorAs(t, err, &sendErr)
		assert.Equal(t, "domain not verified", sendErr.Reason())
	})
}

func TestMailer_SendRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email *Email
		want  error
	}{
		{"no recipient", &Email{Subject: "s", HTML: "h"}, ErrNoRecipient},
		{"no subject", &Email{To: []string{"a@example.com"}, HTML: "h"}, ErrNoSubject},
		{"no content", &Email{To: []string{"a@example.com"}, Subject: "s"}, ErrNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newTestMailer(&MockSender{}).SendRaw(context.Background(), tt.email)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	var got *Email
	s := SenderFunc(func(_ context.Context, e *Email) (string, error) {
		got = e
		return "fn", nil
	})

	id, err := New(s, nil, Config{}).SendRaw(context.Background(), &Email{
		To: []string{"a@example.com"}, Subject: "s", HTML: "<p>h</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "fn", id)
	assert.Equal(t, "s", got.Subject)
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a@example.com", Recipient("", "a@example.com"))
	assert.Equal(t, "Duck Works <a@example.com>", Recipient("Duck Works", "a@example.com"))
}
