package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed endpoints.json
var endpointsJSON []byte

// endpointsBody is the GET /api response, built once.
var endpointsBody = append(append([]byte(`{"endpoints":`), endpointsJSON...), '}')

// Endpoints serves a description of every API endpoint.
func Endpoints(w http.ResponseWriter, r *http.Request) {
	writeRawJSON(w, http.StatusOK, endpointsBody)
}
