package models

// ServiceOption is a priced inspection/consultation/class offering. A
// redirect-only option hands the customer off to WhatsApp instead of taking a
// payment proof in-app.
type ServiceOption struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	Price        float64 `json:"price"`
	RedirectOnly bool    `json:"redirect_only,omitempty"`
}

// ShippingZone is a named shipping-cost bucket.
type ShippingZone struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// StoreSettings is the singleton business-configuration record. It always
// exists: reads fall back to DefaultSettings when nothing was saved yet.
type StoreSettings struct {
	WhatsAppNumber        string          `json:"whatsapp_number"`
	BankName              string          `json:"bank_name"`
	BankAccountName       string          `json:"bank_account_name"`
	BankAccountNumber     string          `json:"bank_account_number"`
	InspectionOptions     []ServiceOption `json:"inspection_options"`
	ConsultationOptions   []ServiceOption `json:"consultation_options"`
	ClassOptions          []ServiceOption `json:"class_options"`
	ShippingZones         []ShippingZone  `json:"shipping_zones"`
	LowInventoryThreshold int             `json:"low_inventory_threshold"`
}

// Canonical zone ids. Zone auto-resolution in the pricing service depends on
// these exact values.
const (
	ZoneLagosIsland   = "lagos-island"
	ZoneLagosMainland = "lagos-mainland"
	ZoneOutsideLagos  = "outside-lagos"
)

func DefaultSettings() StoreSettings {
	return StoreSettings{
		WhatsAppNumber:    "2348000000000",
		BankName:          "GTBank",
		BankAccountName:   "Homespired Interiors",
		BankAccountNumber: "0000000000",
		InspectionOptions: []ServiceOption{
			{ID: "site-inspection", Label: "Site Inspection (Lagos)", Price: 20000},
		},
		ConsultationOptions: []ServiceOption{
			{ID: "virtual-consult", Label: "Virtual Consultation", Price: 15000},
			{ID: "studio-consult", Label: "Studio Consultation", Price: 25000, RedirectOnly: true},
		},
		ClassOptions: []ServiceOption{
			{ID: "decor-masterclass", Label: "Interior Décor Masterclass", Price: 50000},
		},
		ShippingZones: []ShippingZone{
			{ID: ZoneLagosIsland, Label: "Lagos Island", Price: 4000},
			{ID: ZoneLagosMainland, Label: "Lagos Mainland", Price: 3500},
			{ID: ZoneOutsideLagos, Label: "Outside Lagos", Price: 7500},
		},
		LowInventoryThreshold: 5,
	}
}

// Zone returns the zone with the given id, if configured.
func (s StoreSettings) Zone(id string) (ShippingZone, bool) {
	for _, z := range s.ShippingZones {
		if z.ID == id {
			return z, true
		}
	}
	return ShippingZone{}, false
}

// OptionsFor returns the option list for a request type.
func (s StoreSettings) OptionsFor(t RequestType) []ServiceOption {
	switch t {
	case RequestInspection:
		return s.InspectionOptions
	case RequestConsultation:
		return s.ConsultationOptions
	case RequestClass:
		return s.ClassOptions
	}
	return nil
}
