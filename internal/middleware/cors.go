package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS permits browser clients served from other origins to call the
// JSON API. The surface is read-only public data plus the chat relay,
// so a permissive policy is acceptable.
var CORS = cors.New(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"Accept", "Content-Type"},
}).Handler
