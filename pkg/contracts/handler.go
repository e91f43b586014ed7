package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every HTTP surface (fleet, bookings, health)
// so the application can mount them uniformly.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
