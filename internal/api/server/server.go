package server

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

// New builds the briefing HTTP server around the gin engine. The briefing
// endpoints fan out to remote feeds, so the write timeout stays generous.
func New(addr string, router *ginext.Engine) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}
