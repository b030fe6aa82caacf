package handler

import (
	"net/http"
	"time"
)

var startedAt = time.Now()

type healthcheckResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Uptime string `json:"uptime"`
}

// HealthcheckHandler não depende do backend de votos; serve para o probe do orquestrador
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		writeJSON(w, http.StatusOK, healthcheckResponse{
			Status: "ok",
			Time:   now.Format(time.RFC3339),
			Uptime: now.Sub(startedAt).Truncate(time.Second).String(),
		})
	})
}
