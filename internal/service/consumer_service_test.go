package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nec-chat-be/internal/constant"
	"nec-chat-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerWritesSystemLogRows(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	defer pubSub.Close()

	uow := newFakeUow()
	svc := NewConsumerService(pubSub, constant.AuthEventsTopic, &fakeFactory{uow: uow})
	require.NoError(t, svc.Consume(context.Background()))

	userId := uuid.New()
	payload, err := json.Marshal(dto.AuthEventMessage{
		Event:      constant.EventUserLogin,
		UserId:     userId,
		Username:   "ana",
		Device:     "test-agent",
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)

	msg := message.NewMessage(watermill.NewUUID(), payload)
	require.NoError(t, pubSub.Publish(constant.AuthEventsTopic, msg))

	assert.Eventually(t, func() bool {
		return len(uow.systemLogRepo.Snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	entry := uow.systemLogRepo.Snapshot()[0]
	assert.Equal(t, constant.EventUserLogin, entry.Event)
	require.NotNil(t, entry.UserId)
	assert.Equal(t, userId, *entry.UserId)
	require.NotNil(t, entry.Username)
	assert.Equal(t, "ana", *entry.Username)
	require.NotNil(t, entry.Details)
	assert.Contains(t, *entry.Details, "test-agent")
}

func TestConsumerAcksUnreadablePayload(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	defer pubSub.Close()

	uow := newFakeUow()
	svc := NewConsumerService(pubSub, constant.AuthEventsTopic, &fakeFactory{uow: uow})
	require.NoError(t, svc.Consume(context.Background()))

	bad := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	require.NoError(t, pubSub.Publish(constant.AuthEventsTopic, bad))

	good, err := json.Marshal(dto.AuthEventMessage{Event: constant.EventUserLogout, Username: "ana"})
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(constant.AuthEventsTopic, message.NewMessage(watermill.NewUUID(), good)))

	assert.Eventually(t, func() bool {
		return len(uow.systemLogRepo.Snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, constant.EventUserLogout, uow.systemLogRepo.Snapshot()[0].Event)
}
