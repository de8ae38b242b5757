package kafka_test

import (
	"marketplace/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	JobID     string `json:"job_id"`
	Delivered bool   `json:"delivered"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{Key: "acc-1", Value: report{JobID: "job-1", Delivered: true}}

	msg, err := message.ToKafkaMessage()
	require.NoError(t, err)

	assert.Equal(t, []byte("acc-1"), msg.Key)
	assert.JSONEq(t, `{"job_id":"job-1","delivered":true}`, string(msg.Value))
}

func TestMessage_ToKafkaMessageUnsupportedValue(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	decoded, err := kafka.Decode[report](kafkaGo.Message{Value: []byte(`{"job_id":"job-2","delivered":false}`)})
	require.NoError(t, err)

	assert.Equal(t, report{JobID: "job-2"}, decoded)

	_, err = kafka.Decode[report](kafkaGo.Message{Value: []byte(`not json`)})
	assert.Error(t, err)
}
