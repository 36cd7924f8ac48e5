package models

// MessagesResponse is the server reply to a verification message listing.
type MessagesResponse struct {
	// Messages holds every inbound SMS captured for the verification so
	// far, oldest first.
	Messages []SMSMessage `json:"messages"`

	// Length is the total number of entries in Messages. Provided for
	// convenience so the client can validate the response without
	// iterating the slice.
	Length int `json:"length"`
}

// RentalsResponse is the server reply to a rental listing.
type RentalsResponse struct {
	Rentals []Rental `json:"rentals"`
	Length  int      `json:"length"`
}

// ErrorResponse is the JSON body the server attaches to non-2xx replies.
type ErrorResponse struct {
	Error string `json:"error"`
}
