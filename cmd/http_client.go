package main

import (
	"net/http"
	"time"
)

// quote API calls run inside the analytics cron tick, so they get a hard
// deadline instead of the client default of none.
const quoteClientTimeout = 10 * time.Second

func (a *App) initHTTPClient() {
	a.HTTPClient = &http.Client{
		Timeout: quoteClientTimeout,
	}
}
