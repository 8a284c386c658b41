package notice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/morningbutler/butler/internal/rabbitmq/queue"
)

type sentCall struct {
	to    string
	title string
	body  string
}

type fakeDispatcher struct {
	calls []sentCall
	err   error
}

func (d *fakeDispatcher) Send(to, title, body string) error {
	d.calls = append(d.calls, sentCall{to: to, title: title, body: body})
	return d.err
}

var strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

func notice() queue.NoticeMessage {
	return queue.NoticeMessage{
		ID:        uuid.New(),
		Title:     "1 assignment due soon",
		Body:      "CS 101: Homework 3",
		Tag:       "assignments-due",
		EmittedAt: time.Now(),
	}
}

func TestHandler_FansOutToAllChannels(t *testing.T) {
	email := &fakeDispatcher{}
	telegram := &fakeDispatcher{}

	h := NewHandler(map[string]Target{
		"email":    {Dispatcher: email, To: "user@example.com"},
		"telegram": {Dispatcher: telegram, To: "123456"},
	})

	h.HandleMessage(context.Background(), notice(), strategy)

	require.Len(t, email.calls, 1)
	assert.Equal(t, "user@example.com", email.calls[0].to)
	assert.Equal(t, "1 assignment due soon", email.calls[0].title)
	assert.Equal(t, "CS 101: Homework 3", email.calls[0].body)

	require.Len(t, telegram.calls, 1)
	assert.Equal(t, "123456", telegram.calls[0].to)
}

func TestHandler_FailedChannelDoesNotBlockOthers(t *testing.T) {
	email := &fakeDispatcher{err: errors.New("smtp refused")}
	telegram := &fakeDispatcher{}

	h := NewHandler(map[string]Target{
		"email":    {Dispatcher: email, To: "user@example.com"},
		"telegram": {Dispatcher: telegram, To: "123456"},
	})

	h.HandleMessage(context.Background(), notice(), strategy)

	assert.Len(t, telegram.calls, 1)
}

func TestHandler_NoChannels(t *testing.T) {
	h := NewHandler(nil)

	h.HandleMessage(context.Background(), notice(), strategy)
}

func TestHandler_CancelledContext(t *testing.T) {
	email := &fakeDispatcher{}
	h := NewHandler(map[string]Target{
		"email": {Dispatcher: email, To: "user@example.com"},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h.HandleMessage(ctx, notice(), strategy)

	assert.Empty(t, email.calls)
}
