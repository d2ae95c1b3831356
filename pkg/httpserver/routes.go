package httpserver

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// HandleSlashOptional registers handler for path both with and without a
// trailing slash, so clients need not care and no redirect is issued
func HandleSlashOptional(router *mux.Router, path string, handler http.HandlerFunc, methods ...string) {
	bare := strings.TrimSuffix(path, "/")
	router.HandleFunc(bare, handler).Methods(methods...)
	router.HandleFunc(bare+"/", handler).Methods(methods...)
}
