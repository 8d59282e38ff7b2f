package reminders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"kizuna-dashboard/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/pets/{petID}/reminders", sendReminderHandler(svc))

	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listRemindersHandler(svc))
		rr.Get("/status", statusHandler(svc))
	})
}

type statusResponse struct {
	Busy    bool     `json:"busy"`
	Sending []string `json:"sending"`
}

func sendReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rem, err := svc.SendByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "pet must have an id and an owner phone", http.StatusBadRequest)
			case errors.Is(err, pets.ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			case errors.Is(err, ErrAlreadySending):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "reminder not sent", http.StatusBadGateway)
			}
			return
		}
		writeJSON(w, http.StatusCreated, rem)
	}
}

// listRemindersHandler acepta ?petId= para filtrar.
func listRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			items []Reminder
			err   error
		)
		if petID := strings.TrimSpace(r.URL.Query().Get("petId")); petID != "" {
			items, err = svc.ListByPet(r.Context(), petID)
		} else {
			items, err = svc.List(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func statusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, statusResponse{
			Busy:    svc.Busy(),
			Sending: svc.InFlight(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
