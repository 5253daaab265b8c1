// Package app holds the wired singletons the HTTP handlers run against.
// Everything here is constructed once in main with explicit dependencies;
// tests build their own instances instead of touching these.
package app

import (
	"github.com/uthybuilds/Homespired-sub000/events"
	"github.com/uthybuilds/Homespired-sub000/services"
	"github.com/uthybuilds/Homespired-sub000/store"
)

var (
	Backend  store.Backend
	Bus      *events.Broadcaster
	Stores   *store.Stores
	Counter  *services.CounterService
	Checkout *services.CheckoutService
	Uploader *services.CloudinaryService
	Notifier *services.ResendClient
)

func Init(
	backend store.Backend,
	bus *events.Broadcaster,
	stores *store.Stores,
	counter *services.CounterService,
	checkout *services.CheckoutService,
	uploader *services.CloudinaryService,
	notifier *services.ResendClient,
) {
	Backend = backend
	Bus = bus
	Stores = stores
	Counter = counter
	Checkout = checkout
	Uploader = uploader
	Notifier = notifier
}
