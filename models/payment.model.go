package models

// PaymentIntentRequest asks for a payment intent covering quantity
// units of a single plant.
type PaymentIntentRequest struct {
	PlantID  string `json:"plantId"`
	Quantity int    `json:"quantity"`
}

// PaymentIntentResponse carries the processor's opaque client secret
// back to the checkout page verbatim.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
