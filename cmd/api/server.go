package main

import (
	"net/http"
	"time"
)

func (app *application) serve() error {
	server := &http.Server{
		Addr:         app.Config.GetServerAddr(),
		Handler:      app.routes(),
		IdleTimeout: time.Minute,
		ReadTimeout: 10 * time.Second,
		// The retry ladder can hold a response open across several
		// upstream calls.
		WriteTimeout: 10 * time.Minute,
	}

	app.Logger.Sugar().Infof("starting server on %s", server.Addr)

	return server.ListenAndServe()
}
