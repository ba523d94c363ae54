package model

// Label is the category the classifier assigns to a guest query.
type Label string

const (
	LabelGreeting         Label = "greeting"
	LabelRoomAvailability Label = "room_availability"
	LabelBookingRequest   Label = "booking_request"
	LabelFacilitiesInfo   Label = "facilities_info"
	LabelLocationInfo     Label = "location_info"
	LabelGeneralQuestion  Label = "general_question"
	LabelUnknown          Label = "unknown"
)

// KnownLabels returns the full label set the classifier may produce.
func KnownLabels() []Label {
	return []Label{
		LabelGreeting,
		LabelRoomAvailability,
		LabelBookingRequest,
		LabelFacilitiesInfo,
		LabelLocationInfo,
		LabelGeneralQuestion,
		LabelUnknown,
	}
}

// NeedsRoomContext reports whether the label routes to the room listing.
func (l Label) NeedsRoomContext() bool {
	return l == LabelRoomAvailability || l == LabelBookingRequest
}

// NeedsHotelInfo reports whether the label routes to the hotel brochure.
func (l Label) NeedsHotelInfo() bool {
	switch l {
	case LabelGreeting, LabelFacilitiesInfo, LabelLocationInfo, LabelGeneralQuestion:
		return true
	}
	return false
}

// QueryResponse successful reply envelope
type QueryResponse struct {
	Response string `json:"response"`
}

// ErrorResponse error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}
