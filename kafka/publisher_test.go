package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/shopfront/internal/customer/domain"
)

func TestPublishFavoriteEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	occurred := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var sent *sarama.ProducerMessage
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		sent = msg
		return nil
	})

	p := NewPublisherWithProducer(producer, "")
	err := p.PublishFavoriteEvent(context.Background(), domain.FavoriteEvent{
		Type:       domain.FavoriteAdded,
		CustomerID: 7,
		ProductID:  5,
		FavoriteID: 11,
		OccurredAt: occurred,
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())

	require.NotNil(t, sent)
	assert.Equal(t, DefaultFavoritesTopic, sent.Topic)

	key, err := sent.Key.Encode()
	require.NoError(t, err)
	assert.Equal(t, "customer_7", string(key))

	value, err := sent.Value.Encode()
	require.NoError(t, err)
	var msg FavoriteChangedMessage
	require.NoError(t, json.Unmarshal(value, &msg))
	assert.NotEmpty(t, msg.EventID)
	assert.Equal(t, "favorite.added", msg.EventType)
	assert.Equal(t, uint(7), msg.CustomerID)
	assert.Equal(t, int64(5), msg.ProductID)
	assert.Equal(t, uint(11), msg.FavoriteID)
	assert.True(t, occurred.Equal(msg.Timestamp))

	headers := map[string]string{}
	for _, h := range sent.Headers {
		headers[string(h.Key)] = string(h.Value)
	}
	assert.Equal(t, "favorite.added", headers["event_type"])
	assert.Equal(t, msg.EventID, headers["event_id"])
}

func TestPublishFavoriteEventFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisherWithProducer(producer, "favorites")
	err := p.PublishFavoriteEvent(context.Background(), domain.FavoriteEvent{Type: domain.FavoriteRemoved, CustomerID: 1, ProductID: 2})

	require.Error(t, err)
	assert.True(t, errors.Is(err, sarama.ErrOutOfBrokers))
	require.NoError(t, p.Close())
}
