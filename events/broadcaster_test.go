package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	b := New(nil)

	var cart, storage int
	b.Subscribe(TopicCartChanged, func() { cart++ })
	b.Subscribe(TopicCartChanged, func() { cart += 10 })
	b.Subscribe(TopicStorageChanged, func() { storage++ })

	b.Publish(TopicCartChanged)
	assert.Equal(t, 11, cart, "every subscriber of the topic runs")
	assert.Equal(t, 0, storage, "other topics are untouched")

	b.Publish(TopicStorageChanged)
	assert.Equal(t, 1, storage)
}

func TestPublishWithoutSubscribersIsHarmless(t *testing.T) {
	b := New(nil)
	assert.NotPanics(t, func() { b.Publish(TopicSettingsChanged) })
}

func TestRemoteSubscribersSkipLocalPublishes(t *testing.T) {
	b := New(nil)

	var local, remote int
	b.Subscribe(TopicCartChanged, func() { local++ })
	b.SubscribeRemote(TopicCartChanged, func() { remote++ })

	b.Publish(TopicCartChanged)
	assert.Equal(t, 1, local)
	assert.Equal(t, 0, remote, "this process's own publishes skip remote subscribers")
}

func TestRelayedMessageRunsRemoteThenLocalSubscribers(t *testing.T) {
	b := New(nil)

	var order []string
	b.SubscribeRemote(TopicSettingsChanged, func() { order = append(order, "remote") })
	b.Subscribe(TopicSettingsChanged, func() { order = append(order, "local") })

	payload, err := json.Marshal(message{Sender: "another-device", Topic: TopicSettingsChanged})
	require.NoError(t, err)
	b.handle(payload)

	assert.Equal(t, []string{"remote", "local"}, order,
		"the re-read lands before any view reacts to the change")
}

func TestOwnRelayedMessageIsSuppressed(t *testing.T) {
	b := New(nil)

	var fired int
	b.Subscribe(TopicCartChanged, func() { fired++ })
	b.SubscribeRemote(TopicCartChanged, func() { fired++ })

	payload, err := json.Marshal(message{Sender: b.sender, Topic: TopicCartChanged})
	require.NoError(t, err)
	b.handle(payload)

	assert.Equal(t, 0, fired, "an echoed own publish must not dispatch again")
}

func TestMalformedRelayedMessageIsIgnored(t *testing.T) {
	b := New(nil)

	var fired int
	b.SubscribeRemote(TopicCartChanged, func() { fired++ })

	assert.NotPanics(t, func() { b.handle([]byte("not json")) })
	assert.Equal(t, 0, fired)
}
