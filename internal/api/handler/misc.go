package handler

import "net/http"

// Liveness handles GET / as a liveness probe
func Liveness(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Teapot handles GET /teapotcoffee
func Teapot(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
	_, _ = w.Write([]byte("The server refuses the attempt to brew coffee with a teapot"))
}
