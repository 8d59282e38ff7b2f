package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"kizuna-dashboard/internal/domain/reminders"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange   string
	kind       string
	declareErr error

	published []amqp.Publishing
	keys      []string
	closed    bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp.Table) error {
	f.exchange, f.kind = name, kind
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.keys = append(f.keys, exchange+"/"+key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublishReminderSent(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newPublisher(ch, "")
	require.NoError(t, err)
	assert.Equal(t, "kizuna.events", ch.exchange)
	assert.Equal(t, "topic", ch.kind)

	sentAt := time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)
	r := reminders.Reminder{ID: "r01", PetID: "p1", PetName: "Bingo", SentAt: sentAt, Status: reminders.StatusSent, Type: reminders.TypeCheckup}
	require.NoError(t, p.PublishReminderSent(context.Background(), r))

	require.Len(t, ch.published, 1)
	assert.Equal(t, []string{"kizuna.events/reminder.sent"}, ch.keys)
	msg := ch.published[0]
	assert.Equal(t, "r01", msg.MessageId)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

	var ev map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &ev))
	assert.Equal(t, "reminder.sent", ev["event"])
	assert.Equal(t, "Bingo", ev["reminder"].(map[string]any)["petName"])

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNewPublisher_DeclareError(t *testing.T) {
	_, err := newPublisher(&fakeChannel{declareErr: errors.New("access refused")}, "x")
	assert.Error(t, err)
}

func TestNewPublisher_RequiresURL(t *testing.T) {
	_, err := NewPublisher(Config{})
	assert.Error(t, err)
}
