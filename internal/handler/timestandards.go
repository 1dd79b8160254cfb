package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/boo99ooq/forte-village-housekeeping/internal/utils"
)

// GetAllTimeStandards restituisce i tempi standard di tutte le zone
// dell'elenco canonico. Le zone mai configurate escono con i valori di
// fallback, cosi' il client vede sempre la griglia completa.
func (h *Handler) GetAllTimeStandards(w http.ResponseWriter, r *http.Request) {
	configured, err := h.repository.GetAllTimeStandards()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	standards := make([]domain.TimeStandard, 0, len(domain.ZoneList))
	for _, zone := range domain.ZoneList {
		if ts, ok := configured[zone]; ok {
			standards = append(standards, ts)
			continue
		}
		standards = append(standards, domain.DefaultTimeStandard(zone))
	}

	h.successResponse(w, r, "tempi standard recuperati", standards)
}

func (h *Handler) UpsertTimeStandard(w http.ResponseWriter, r *http.Request) {
	zone := chi.URLParam(r, "zone")

	var req struct {
		ArrivalIndividual  float64 `json:"arrivalIndividual" validate:"required,gt=0"`
		StayoverIndividual float64 `json:"stayoverIndividual" validate:"required,gt=0"`
		ArrivalGroup       float64 `json:"arrivalGroup" validate:"required,gt=0"`
		StayoverGroup      float64 `json:"stayoverGroup" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ts := &domain.TimeStandard{
		Zone:               zone,
		ArrivalIndividual:  req.ArrivalIndividual,
		StayoverIndividual: req.StayoverIndividual,
		ArrivalGroup:       req.ArrivalGroup,
		StayoverGroup:      req.StayoverGroup,
	}

	if err := utils.ValidateTimeStandard(ts); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpsertTimeStandard(ts); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "tempi standard aggiornati", ts)
}
