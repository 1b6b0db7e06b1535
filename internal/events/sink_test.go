package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStream struct {
	args []*redis.XAddArgs
	err  error
}

func (f *fakeStream) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = append(f.args, a)
	return redis.NewStringResult("1-0", f.err)
}

func TestRedisStreamSinkSend(t *testing.T) {
	stream := &fakeStream{}
	sink := NewRedisStreamSink(stream, "developer-events", 500)
	event := NewEvent(EventDeveloperRetired, "member-1", DeveloperRetiredPayload{Name: "name"})

	require.NoError(t, sink.Send(context.Background(), event))

	require.Len(t, stream.args, 1)
	args := stream.args[0]
	assert.Equal(t, "developer-events", args.Stream)
	assert.Equal(t, int64(500), args.MaxLen)
	assert.True(t, args.Approx)

	values := args.Values.(map[string]interface{})
	assert.Equal(t, "developer_retired", values["type"])
	assert.Equal(t, "member-1", values["member_id"])

	var decoded Event
	require.NoError(t, json.Unmarshal(values["body"].([]byte), &decoded))
	assert.Equal(t, event.ID, decoded.ID)
}

func TestRedisStreamSinkError(t *testing.T) {
	sink := NewRedisStreamSink(&fakeStream{err: errors.New("down")}, "developer-events", 0)

	err := sink.Send(context.Background(), NewEvent(EventDeveloperCreated, "member-1", nil))

	assert.ErrorContains(t, err, "xadd developer-events")
}

func TestKafkaSinkSend(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "member-1" {
			return errors.New("unexpected key " + string(key))
		}
		if msg.Topic != "developers" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		return nil
	})

	sink := NewKafkaSink(producer, "developers", "developer-service", zap.NewNop())
	require.NoError(t, sink.Send(context.Background(), NewEvent(EventDeveloperCreated, "member-1", nil)))
	require.NoError(t, sink.Close())
}

func TestKafkaSinkSendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	sink := NewKafkaSink(producer, "developers", "developer-service", zap.NewNop())
	err := sink.Send(context.Background(), NewEvent(EventDeveloperCreated, "member-1", nil))

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, sink.Close())
}

func TestProducerConfigRaisesRetriesForIdempotence(t *testing.T) {
	for _, retries := range []int{-1, 0} {
		cfg := newProducerConfig("developer-service", retries)
		assert.Equal(t, 1, cfg.Producer.Retry.Max)
		assert.NoError(t, cfg.Validate())
	}

	cfg := newProducerConfig("developer-service", 5)
	assert.Equal(t, 5, cfg.Producer.Retry.Max)
	assert.NoError(t, cfg.Validate())
}

func TestNewKafkaSyncProducerZeroRetriesIsNotAConfigError(t *testing.T) {
	producer, err := NewKafkaSyncProducer([]string{"127.0.0.1:1"}, "developer-service", 0)
	if err == nil {
		require.NoError(t, producer.Close())
		return
	}

	var cfgErr sarama.ConfigurationError
	assert.False(t, errors.As(err, &cfgErr), err.Error())
}
