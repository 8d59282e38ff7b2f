package campaigns

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/campaigns", func(cr chi.Router) {
		cr.Get("/", listCampaignsHandler(svc))
		cr.Post("/", createCampaignHandler(svc))
		cr.Get("/templates", listTemplatesHandler())
	})

	r.Route("/drafts", func(dr chi.Router) {
		dr.Get("/", listDraftsHandler(svc))
		dr.Post("/auto-wishes", autoWishesHandler(svc))
		dr.Put("/{draftID}/message", editDraftHandler(svc))
		dr.Post("/{draftID}/approve", processDraftHandler(svc, true))
		dr.Post("/{draftID}/reject", processDraftHandler(svc, false))
	})
}

type createCampaignRequest struct {
	Name     string `json:"name"`
	Message  string `json:"message"`
	Target   string `json:"target"`
	Template string `json:"template"` // opcional: completa lo que falte desde la plantilla
}

type editDraftRequest struct {
	Message string `json:"message"`
}

type processDraftRequest struct {
	Message string `json:"message"`
}

type autoWishesResponse struct {
	DraftsCreated int `json:"drafts_created"`
}

func listCampaignsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListCampaigns(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func createCampaignHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if id := strings.TrimSpace(req.Template); id != "" {
			t, ok := TemplateByID(id)
			if !ok {
				http.Error(w, "unknown template", http.StatusBadRequest)
				return
			}
			if strings.TrimSpace(req.Name) == "" {
				req.Name = t.Name
			}
			if strings.TrimSpace(req.Message) == "" {
				req.Message = t.DefaultMessage
			}
			if strings.TrimSpace(req.Target) == "" {
				req.Target = string(t.Target)
			}
		}

		res, err := svc.CreateCampaign(r.Context(), req.Name, req.Message, Audience(strings.TrimSpace(req.Target)))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "name, message and a valid target are required", http.StatusBadRequest)
			default:
				http.Error(w, "failed to create campaign", http.StatusBadGateway)
			}
			return
		}
		writeJSON(w, http.StatusCreated, res)
	}
}

func listTemplatesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Templates())
	}
}

func listDraftsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListDrafts(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func editDraftHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req editDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := svc.EditDraft(r.Context(), chi.URLParam(r, "draftID"), req.Message); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "draft not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// processDraftHandler acepta body vacío; si trae message, tiene prioridad sobre la edición guardada.
func processDraftHandler(svc *Service, approved bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req processDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.ProcessDraft(r.Context(), chi.URLParam(r, "draftID"), approved, req.Message); err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "failed to process draft", http.StatusBadGateway)
			}
			return
		}

		items, _ := svc.ListDrafts(r.Context())
		writeJSON(w, http.StatusOK, items)
	}
}

func autoWishesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.GenerateAutoWishes(r.Context())
		if err != nil {
			http.Error(w, "failed to generate wishes", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, autoWishesResponse{DraftsCreated: n})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
