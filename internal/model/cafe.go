package model

// Cafe is one entry of the cafe directory.  The JSON tags are the wire
// contract of the cafe API and must not change; every listing endpoint
// returns cafes in exactly this shape.
//
// CoffeePrice is the only nullable column and is therefore a pointer:
// a nil value serializes to JSON null, matching rows created without a
// price.
type Cafe struct {
	ID           int64   `json:"id"`             // cafes.id
	Name         string  `json:"name"`           // cafes.name, unique
	MapURL       string  `json:"map_url"`        // cafes.map_url
	ImgURL       string  `json:"img_url"`        // cafes.img_url
	Location     string  `json:"location"`       // cafes.location
	Seats        string  `json:"seats"`          // cafes.seats, free text like "20-30"
	HasToilet    bool    `json:"has_toilet"`     // cafes.has_toilet
	HasWifi      bool    `json:"has_wifi"`       // cafes.has_wifi
	HasSockets   bool    `json:"has_sockets"`    // cafes.has_sockets
	CanTakeCalls bool    `json:"can_take_calls"` // cafes.can_take_calls
	CoffeePrice  *string `json:"coffee_price"`   // cafes.coffee_price, nullable
}
