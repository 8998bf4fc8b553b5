package handlers

import "github.com/go-chi/chi/v5"

// Mountable is implemented by feature handlers that register their own
// routes on the shared router.
type Mountable interface {
	Mount(r chi.Router)
}
