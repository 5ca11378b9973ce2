package dto

import "github.com/petcarex/console/internal/gateway"

// PortalOverview bundles the customer portal's landing reads.
type PortalOverview struct {
	Pets      []gateway.Row `json:"pets"`
	Packages  []gateway.Row `json:"packages"`
	Bookings  []gateway.Row `json:"bookings"`
	Purchases []gateway.Row `json:"purchases"`
}

// CreatePetRequest registers a new pet.
type CreatePetRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
}

// BookingRequest books an appointment for one of the customer's pets.
type BookingRequest struct {
	PetID     string `json:"pet_id"`
	ServiceID string `json:"service_id"`
}

// ConfirmBookingRequest settles a booked session. The session id comes from
// the route path.
type ConfirmBookingRequest struct {
	PaymentMethod string `json:"payment_method"`
}
