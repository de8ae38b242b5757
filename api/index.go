package handler

import (
	"marketplace/config"
	"marketplace/di"
	"marketplace/shared/logger"
	"marketplace/transport/http"
	nethttp "net/http"
	"sync"
)

var (
	once   sync.Once
	server *http.HTTP
)

// Handler is the serverless entry point. The dependency graph is built on the
// first invocation and reused while the instance stays warm.
func Handler(w nethttp.ResponseWriter, r *nethttp.Request) {
	once.Do(func() {
		logger.Init(config.Get())

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
