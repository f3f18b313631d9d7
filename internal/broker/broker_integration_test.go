//go:build integration

package broker_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/UnknownOlympus/hestia/internal/broker"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPublisher_PublishAndConsume(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672/tcp")
	require.NoError(t, err)

	uri := fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
	queue := "hestia_changes_test"

	pub, err := broker.NewPublisher(uri, queue)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pub.Close() })

	require.NoError(t, pub.Ping(ctx))

	event := broker.Event{
		Action:    broker.ActionCreated,
		Entity:    broker.EntityCompany,
		ID:        1,
		Name:      "Acme",
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, pub.Publish(ctx, event))

	conn, err := amqp.Dial(uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	channel, err := conn.Channel()
	require.NoError(t, err)

	var delivery amqp.Delivery
	require.Eventually(t, func() bool {
		msg, ok, getErr := channel.Get(queue, true)
		if getErr != nil || !ok {
			return false
		}
		delivery = msg
		return true
	}, 10*time.Second, 200*time.Millisecond)

	assert.Equal(t, "application/json", delivery.ContentType)
	assert.Equal(t, "company.created", delivery.Type)

	var received broker.Event
	require.NoError(t, json.Unmarshal(delivery.Body, &received))
	assert.Equal(t, event.Name, received.Name)
	assert.Equal(t, event.ID, received.ID)
	assert.True(t, event.Timestamp.Equal(received.Timestamp))
}
