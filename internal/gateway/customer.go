package gateway

import (
	"context"
)

// CustomerClient covers the customer self-service operations of the
// upstream API.
type CustomerClient struct {
	c *Client
}

// NewCustomerClient builds the client.
func NewCustomerClient(c *Client) *CustomerClient {
	return &CustomerClient{c: c}
}

func (cc *CustomerClient) getItems(ctx context.Context, path string, query map[string]string) ([]Row, error) {
	var out itemsEnvelope
	req := cc.c.R(ctx).SetResult(&out)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	if err := cc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (cc *CustomerClient) postRow(ctx context.Context, path string, query map[string]string) (Row, error) {
	var out Row
	resp, err := cc.c.R(ctx).
		SetQueryParams(query).
		SetResult(&out).
		Post(path)
	if err := cc.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// Packages lists the vaccine packages on offer.
func (cc *CustomerClient) Packages(ctx context.Context) ([]Row, error) {
	return cc.getItems(ctx, "/customer/packages", nil)
}

// Pets lists a customer's pets.
func (cc *CustomerClient) Pets(ctx context.Context, customerID string) ([]Row, error) {
	return cc.getItems(ctx, "/customer/pets", map[string]string{"ma_kh": customerID})
}

// CreatePet registers a new pet for the customer.
func (cc *CustomerClient) CreatePet(ctx context.Context, customerID, name, species, breed string) (Row, error) {
	query := map[string]string{
		"ma_kh": customerID,
		"ten":   name,
	}
	if species != "" {
		query["loai"] = species
	}
	if breed != "" {
		query["giong"] = breed
	}
	return cc.postRow(ctx, "/customer/pets", query)
}

// DeletePet removes a pet the customer owns.
func (cc *CustomerClient) DeletePet(ctx context.Context, petID, customerID string) error {
	resp, err := cc.c.R(ctx).
		SetQueryParam("ma_kh", customerID).
		Delete("/customer/pets/" + petID)
	return cc.c.check(resp, err)
}

// VaccinationHistory lists a pet's vaccination records.
func (cc *CustomerClient) VaccinationHistory(ctx context.Context, petID, customerID string) ([]Row, error) {
	return cc.getItems(ctx, "/customer/pets/"+petID+"/vaccinations", map[string]string{"ma_kh": customerID})
}

// CreateBooking books an appointment, opening the session and invoice that
// anchor the cart workflow.
func (cc *CustomerClient) CreateBooking(ctx context.Context, customerID, petID, serviceID string) (Row, error) {
	return cc.postRow(ctx, "/customer/appointments", map[string]string{
		"ma_kh":       customerID,
		"ma_thu_cung": petID,
		"ma_dv":       serviceID,
	})
}

// ConfirmAppointment confirms a booked session, settling its invoice with
// the chosen payment method.
func (cc *CustomerClient) ConfirmAppointment(ctx context.Context, sessionID, paymentMethod string) (Row, error) {
	return cc.postRow(ctx, "/customer/appointments/"+sessionID+"/confirm", map[string]string{
		"hinh_thuc_thanh_toan": paymentMethod,
	})
}

// CancelBooking cancels a booked session.
func (cc *CustomerClient) CancelBooking(ctx context.Context, sessionID, customerID string) error {
	resp, err := cc.c.R(ctx).
		SetQueryParam("ma_kh", customerID).
		Delete("/customer/appointments/" + sessionID)
	return cc.c.check(resp, err)
}

// Bookings lists the customer's bookings.
func (cc *CustomerClient) Bookings(ctx context.Context, customerID string) ([]Row, error) {
	return cc.getItems(ctx, "/customer/me/bookings", map[string]string{"ma_kh": customerID})
}

// Appointments lists the customer's appointments.
func (cc *CustomerClient) Appointments(ctx context.Context, customerID string) ([]Row, error) {
	return cc.getItems(ctx, "/customer/me/appointments", map[string]string{"ma_kh": customerID})
}

// Purchases lists the customer's settled purchases.
func (cc *CustomerClient) Purchases(ctx context.Context, customerID string) ([]Row, error) {
	return cc.getItems(ctx, "/customer/me/purchases", map[string]string{"ma_kh": customerID})
}

// Services lists the service catalog.
func (cc *CustomerClient) Services(ctx context.Context) ([]Row, error) {
	return cc.getItems(ctx, "/customer/services", nil)
}
