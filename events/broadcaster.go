// Package events carries the payload-less change notifications that keep
// concurrently open views consistent. A publish tells subscribers "re-read
// me"; it never carries data, so there is no partial-update race to resolve.
package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/uthybuilds/Homespired-sub000/config"
)

type Topic string

const (
	TopicCartChanged     Topic = "cart-changed"
	TopicSettingsChanged Topic = "settings-changed"
	TopicRequestsChanged Topic = "requests-changed"
	// TopicStorageChanged covers everything without a dedicated topic,
	// including catalog, orders and discounts.
	TopicStorageChanged Topic = "storage-changed"
)

const redisChannel = "homespired:events"

type message struct {
	Sender string `json:"sender"`
	Topic  Topic  `json:"topic"`
}

// Broadcaster fans a topic out to in-process subscribers and, when Redis is
// configured, to every other device process through pub/sub. Remote fanout is
// fire-and-forget.
type Broadcaster struct {
	mu         sync.RWMutex
	subs       map[Topic][]func()
	remoteSubs map[Topic][]func()
	rdb        *redis.Client
	sender     string
}

func New(rdb *redis.Client) *Broadcaster {
	b := &Broadcaster{
		subs:       make(map[Topic][]func()),
		remoteSubs: make(map[Topic][]func()),
		rdb:        rdb,
		sender:     uuid.NewString(),
	}
	if rdb != nil {
		go b.listen()
	}
	return b
}

// Subscribe registers fn to run on every publish of topic. Callbacks run
// synchronously on the publishing goroutine, so they should only invalidate
// and re-read, not block.
func (b *Broadcaster) Subscribe(topic Topic, fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], fn)
}

// SubscribeRemote registers fn for publishes that originated in *other*
// processes. This process's own publishes skip it: the remote backend uses
// these to re-read state it did not write itself, and re-reading on a local
// publish would race the write's own asynchronous replication.
func (b *Broadcaster) SubscribeRemote(topic Topic, fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.remoteSubs[topic] = append(b.remoteSubs[topic], fn)
}

// Publish notifies local subscribers and relays the topic to other processes.
func (b *Broadcaster) Publish(topic Topic) {
	b.dispatch(topic)

	if b.rdb == nil {
		return
	}
	payload, _ := json.Marshal(message{Sender: b.sender, Topic: topic})
	go func() {
		if err := b.rdb.Publish(config.Ctx, redisChannel, payload).Err(); err != nil {
			log.Printf("[events] relay failed for %s: %v", topic, err)
		}
	}()
}

func (b *Broadcaster) dispatch(topic Topic) {
	b.mu.RLock()
	fns := append([]func(){}, b.subs[topic]...)
	b.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

func (b *Broadcaster) dispatchRemote(topic Topic) {
	b.mu.RLock()
	fns := append([]func(){}, b.remoteSubs[topic]...)
	b.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

// handle processes one relayed message. Remote subscribers run before the
// plain ones so the re-read lands before any view reacts to the change.
func (b *Broadcaster) handle(payload []byte) {
	var m message
	if err := json.Unmarshal(payload, &m); err != nil {
		return
	}
	// Our own publishes already ran locally.
	if m.Sender == b.sender {
		return
	}
	b.dispatchRemote(m.Topic)
	b.dispatch(m.Topic)
}

func (b *Broadcaster) listen() {
	sub := b.rdb.Subscribe(config.Ctx, redisChannel)
	for msg := range sub.Channel() {
		b.handle([]byte(msg.Payload))
	}
}
