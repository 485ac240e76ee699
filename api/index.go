package handler

import (
	"net/http"
	"sync"

	"resort/config"
	"resort/di"
	_ "resort/docs"
	"resort/shared/logger"
)

var (
	once    sync.Once
	handler http.Handler
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		handler = di.InitializeApp().HTTP.Handler()
	})

	handler.ServeHTTP(w, r)
}
