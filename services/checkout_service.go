package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uthybuilds/Homespired-sub000/models"
	"github.com/uthybuilds/Homespired-sub000/store"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrProofRequired  = errors.New("payment proof is required")
	ErrMissingContact = errors.New("name, email and phone are required")
	ErrNoShippingZone = errors.New("could not determine a shipping zone, please select one")
	ErrUnknownOption  = errors.New("unknown service option")
	ErrUnknownZone    = errors.New("unknown shipping zone")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidReqType = errors.New("invalid request type")
)

// CheckoutService orchestrates the commerce lifecycle across the entity
// stores: checkout, service-request submission and the admin status
// transitions with their restock guard.
type CheckoutService struct {
	stores  *store.Stores
	counter *CounterService
}

func NewCheckoutService(stores *store.Stores, counter *CounterService) *CheckoutService {
	return &CheckoutService{stores: stores, counter: counter}
}

type CheckoutInput struct {
	Customer     models.CustomerSnapshot
	ZoneID       string // manual selection; auto-resolved from city/state when empty
	DiscountCode string
	ProofURL     string
	IsAdmin      bool
}

// PlaceOrder runs the whole checkout: price the cart, mint an order number,
// snapshot everything into a pending order, decrement inventory, clear the
// cart and upsert the customer. Validation failures leave every store
// untouched. There is deliberately no lock between the cart's inventory
// check and the decrement here; two devices checking out the last unit at
// once can oversell, and the admin resolves that by hand.
func (s *CheckoutService) PlaceOrder(ctx context.Context, in CheckoutInput) (models.Order, error) {
	if strings.TrimSpace(in.Customer.Name) == "" ||
		strings.TrimSpace(in.Customer.Email) == "" ||
		strings.TrimSpace(in.Customer.Phone) == "" {
		return models.Order{}, ErrMissingContact
	}
	if in.ProofURL == "" {
		return models.Order{}, ErrProofRequired
	}

	items, err := s.stores.Cart.Items()
	if err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	settings, err := s.stores.Settings.Get()
	if err != nil {
		return models.Order{}, err
	}

	zoneID := in.ZoneID
	if zoneID == "" {
		zoneID = ResolveZone(in.Customer.City, in.Customer.State)
	}
	zone, ok := settings.Zone(zoneID)
	if !ok {
		if in.ZoneID != "" {
			return models.Order{}, ErrUnknownZone
		}
		return models.Order{}, ErrNoShippingZone
	}

	var subtotal float64
	lines := make([]models.OrderLine, 0, len(items))
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
		lines = append(lines, models.OrderLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	discounts, err := s.stores.Discounts.Discounts()
	if err != nil {
		return models.Order{}, err
	}
	now := time.Now().UTC()
	eval := EvaluateDiscount(in.DiscountCode, subtotal, discounts, now)

	// The only network round trip checkout blocks on; falls back locally.
	number := s.counter.Next(ctx, SeqOrders, in.IsAdmin)

	order := models.Order{
		ID:           uuid.Must(uuid.NewV7()),
		OrderNumber:  fmt.Sprintf("ORD-%06d", number),
		Status:       models.OrderPending,
		Items:        lines,
		Subtotal:     subtotal,
		ShippingCost: zone.Price,
		Total:        GrandTotal(subtotal, zone.Price, eval.Amount),
		ZoneID:       zone.ID,
		ZoneLabel:    zone.Label,
		Customer:     in.Customer,
		ProofURL:     in.ProofURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if eval.Status == DiscountApplied {
		order.DiscountCode = eval.Code
		order.DiscountAmount = eval.Amount
	}

	if _, err := s.stores.Orders.Create(order); err != nil {
		return models.Order{}, err
	}
	if _, err := s.stores.Catalog.AdjustInventory(lines, store.DecreaseStock); err != nil {
		return models.Order{}, err
	}
	if err := s.stores.Cart.Clear(); err != nil {
		return models.Order{}, err
	}

	s.stores.Customers.Upsert(models.Customer{
		Email:       in.Customer.Email,
		Name:        in.Customer.Name,
		Phone:       in.Customer.Phone,
		Address:     in.Customer.Address,
		City:        in.Customer.City,
		State:       in.Customer.State,
		LastOrderAt: &now,
	})
	s.stores.Analytics.IncrCheckouts(now)

	return order, nil
}

// UpdateOrderStatus applies an admin status transition. Restocking happens
// only when the order moves *into* cancelled from another status; the store
// reports the previous status so re-cancelling an already-cancelled order
// cannot double-restock.
func (s *CheckoutService) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) (models.Order, <-chan error, error) {
	if !status.Valid() {
		return models.Order{}, nil, ErrInvalidStatus
	}

	order, prev, done, err := s.stores.Orders.SetStatus(id, status)
	if err != nil {
		return models.Order{}, nil, err
	}
	if status == models.OrderCancelled && prev != models.OrderCancelled {
		if _, err := s.stores.Catalog.AdjustInventory(order.Items, store.IncreaseStock); err != nil {
			return models.Order{}, nil, err
		}
	}
	return order, done, nil
}

type RequestInput struct {
	Type     models.RequestType
	OptionID string
	Customer models.CustomerSnapshot
	Notes    string
	ProofURL string
	IsAdmin  bool
}

// SubmitRequest books an inspection, consultation or class. Redirect-only
// options skip the proof requirement and hand back a WhatsApp link instead
// of persisting a proof URL.
func (s *CheckoutService) SubmitRequest(ctx context.Context, in RequestInput) (models.ServiceRequest, string, error) {
	if !in.Type.Valid() {
		return models.ServiceRequest{}, "", ErrInvalidReqType
	}
	if strings.TrimSpace(in.Customer.Name) == "" ||
		strings.TrimSpace(in.Customer.Email) == "" ||
		strings.TrimSpace(in.Customer.Phone) == "" {
		return models.ServiceRequest{}, "", ErrMissingContact
	}

	settings, err := s.stores.Settings.Get()
	if err != nil {
		return models.ServiceRequest{}, "", err
	}

	var option models.ServiceOption
	found := false
	for _, opt := range settings.OptionsFor(in.Type) {
		if opt.ID == in.OptionID {
			option = opt
			found = true
			break
		}
	}
	if !found {
		return models.ServiceRequest{}, "", ErrUnknownOption
	}
	if !option.RedirectOnly && in.ProofURL == "" {
		return models.ServiceRequest{}, "", ErrProofRequired
	}

	now := time.Now().UTC()
	number := s.counter.Next(ctx, SeqRequests, in.IsAdmin)

	request := models.ServiceRequest{
		ID:            uuid.Must(uuid.NewV7()),
		RequestNumber: fmt.Sprintf("REQ-%06d", number),
		Type:          in.Type,
		OptionID:      option.ID,
		OptionLabel:   option.Label,
		Price:         option.Price,
		Status:        models.RequestPending,
		Customer:      in.Customer,
		Notes:         in.Notes,
		ProofURL:      in.ProofURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := s.stores.Requests.Create(request); err != nil {
		return models.ServiceRequest{}, "", err
	}
	s.stores.Customers.Upsert(models.Customer{
		Email:   in.Customer.Email,
		Name:    in.Customer.Name,
		Phone:   in.Customer.Phone,
		Address: in.Customer.Address,
		City:    in.Customer.City,
		State:   in.Customer.State,
	})

	redirect := ""
	if option.RedirectOnly {
		text := fmt.Sprintf("Hello Homespired! I'd like to book %s (%s).", option.Label, request.RequestNumber)
		redirect = "https://wa.me/" + settings.WhatsAppNumber + "?text=" + url.QueryEscape(text)
	}
	return request, redirect, nil
}
