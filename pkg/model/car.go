package model

// Fuel type enumeration as stored in the fleet catalog.
const (
	FuelElectric = "Electric"
	FuelHybrid   = "Hybrid"
	FuelGasoline = "Gasoline"
	FuelDiesel   = "Diesel"
)

// FuelCodes maps full fuel type names to the short display codes used on
// car cards (E, H, G, D).
var FuelCodes = map[string]string{
	FuelElectric: "E",
	FuelHybrid:   "H",
	FuelGasoline: "G",
	FuelDiesel:   "D",
}

// Car is a bookable fleet vehicle. Catalog attributes are owned by the
// persistence layer and treated as read-only everywhere in this module.
type Car struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	Make         string    `json:"make" bson:"make"`
	Model        string    `json:"model" bson:"model"`
	Year         int       `json:"year" bson:"year"`
	FuelType     string    `json:"fuel_type" bson:"fuel_type"`
	Seats        int       `json:"seats" bson:"seats"`
	BodyStyle    string    `json:"body_style" bson:"body_style"`
	LicensePlate string    `json:"license_plate" bson:"license_plate"`
	Image        string    `json:"image,omitempty" bson:"image,omitempty"`
	Bookings     []Booking `json:"bookings" bson:"-"`
}

// Availability is derived per car against a candidate range at query time;
// it is never stored.
type Availability struct {
	Available bool   `json:"available"`
	BookedBy  string `json:"booked_by,omitempty"`
}

// CarAvailability pairs a car with its availability for the candidate range
// the caller asked about.
type CarAvailability struct {
	Car          Car          `json:"car"`
	Availability Availability `json:"availability"`
}
