package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"kizuna-dashboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const maxImportSize = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Post("/refresh", refreshPetsHandler(svc))
		pr.Post("/import", importPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.With(middleware.RequireConfirmation).Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name       string `json:"name"`
	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`
	Species    string `json:"species"`
	Breed      string `json:"breed"`
	Sex        string `json:"sex"`
	Color      string `json:"color"`
	Age        string `json:"age"`
	Weight     string `json:"weight"`
	Status     string `json:"status"`

	LastVaccinationDate string `json:"lastVaccinationDate"`
	NextVaccinationDate string `json:"nextVaccinationDate"`
	LastDewormingDate   string `json:"lastDewormingDate"`
	LastCheckupDate     string `json:"lastCheckupDate"`
}

type importResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		err := svc.Create(r.Context(), CreateInput{
			Name:                req.Name,
			OwnerName:           req.OwnerName,
			OwnerPhone:          req.OwnerPhone,
			Species:             req.Species,
			Breed:               req.Breed,
			Sex:                 req.Sex,
			Color:               req.Color,
			Age:                 req.Age,
			Weight:              req.Weight,
			Status:              Status(strings.TrimSpace(req.Status)),
			LastVaccinationDate: req.LastVaccinationDate,
			NextVaccinationDate: req.NextVaccinationDate,
			LastDewormingDate:   req.LastDewormingDate,
			LastCheckupDate:     req.LastCheckupDate,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "name, ownerName and ownerPhone are required", http.StatusBadRequest)
			default:
				http.Error(w, "failed to add pet", http.StatusBadGateway)
			}
			return
		}

		items, _ := svc.List(r.Context())
		writeJSON(w, http.StatusCreated, items)
	}
}

func refreshPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Refresh(r.Context())
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func importPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "multipart field \"file\" is required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		n, err := svc.Import(r.Context(), hdr.Filename, f)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "invalid file", http.StatusBadRequest)
			default:
				http.Error(w, "import failed", http.StatusBadGateway)
			}
			return
		}
		writeJSON(w, http.StatusOK, importResponse{Success: true, Count: n})
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		err := svc.Delete(r.Context(), petID, middleware.Confirmed(r.Context()))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrConfirmationRequired):
				http.Error(w, err.Error(), http.StatusPreconditionRequired)
			default:
				http.Error(w, "failed to delete pet", http.StatusBadGateway)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON está duplicado en los handlers de cada módulo a propósito.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
