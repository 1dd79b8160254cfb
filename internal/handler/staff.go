package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/boo99ooq/forte-village-housekeeping/internal/utils"
)

func (h *Handler) GetAllStaffMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.repository.GetAllStaffMembers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "anagrafica recuperata", members)
}

func (h *Handler) CreateStaffMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name             string   `json:"name" validate:"required"`
		Role             string   `json:"role" validate:"required,oneof=Cameriera Governante"`
		Zones            []string `json:"zones"`
		PartTime         bool     `json:"partTime"`
		Jolly            bool     `json:"jolly"`
		Pendolare        bool     `json:"pendolare"`
		RestPreference   string   `json:"restPreference"`
		CarpoolWith      string   `json:"carpoolWith"`
		PreferredPartner string   `json:"preferredPartner"`
		NoSplit          bool     `json:"noSplit"`
		Professionalita  int      `json:"professionalita" validate:"min=0,max=10"`
		Esperienza       int      `json:"esperienza" validate:"min=0,max=10"`
		TenutaFisica     int      `json:"tenutaFisica" validate:"min=0,max=10"`
		Disponibilita    int      `json:"disponibilita" validate:"min=0,max=10"`
		Empatia          int      `json:"empatia" validate:"min=0,max=10"`
		CapacitaGuida    int      `json:"capacitaGuida" validate:"min=0,max=10"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	member := &domain.StaffMember{
		Name:             req.Name,
		Role:             domain.StaffRole(req.Role),
		Zones:            req.Zones,
		PartTime:         req.PartTime,
		Jolly:            req.Jolly,
		Pendolare:        req.Pendolare,
		RestPreference:   req.RestPreference,
		CarpoolWith:      req.CarpoolWith,
		PreferredPartner: req.PreferredPartner,
		NoSplit:          req.NoSplit,
		Professionalita:  req.Professionalita,
		Esperienza:       req.Esperienza,
		TenutaFisica:     req.TenutaFisica,
		Disponibilita:    req.Disponibilita,
		Empatia:          req.Empatia,
		CapacitaGuida:    req.CapacitaGuida,
	}

	// regole della scheda (zone conosciute, massimo 2 zone per governante)
	if err := utils.ValidateStaffMember(member); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateStaffMember(member); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "staff_members_name_key":
			h.badRequest(w, r, errors.New("collaboratrice gia' in anagrafica"))
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "collaboratrice inserita in anagrafica", member)
}

func (h *Handler) GetStaffMember(w http.ResponseWriter, r *http.Request) {
	member := r.Context().Value(StaffMemberCtx).(*domain.StaffMember)
	h.successResponse(w, r, "scheda recuperata", member)
}

func (h *Handler) UpdateStaffMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name             *string   `json:"name"`
		Role             *string   `json:"role" validate:"omitempty,oneof=Cameriera Governante"`
		Zones            *[]string `json:"zones"`
		PartTime         *bool     `json:"partTime"`
		Jolly            *bool     `json:"jolly"`
		Pendolare        *bool     `json:"pendolare"`
		RestPreference   *string   `json:"restPreference"`
		CarpoolWith      *string   `json:"carpoolWith"`
		PreferredPartner *string   `json:"preferredPartner"`
		NoSplit          *bool     `json:"noSplit"`
		Professionalita  *int      `json:"professionalita" validate:"omitempty,min=0,max=10"`
		Esperienza       *int      `json:"esperienza" validate:"omitempty,min=0,max=10"`
		TenutaFisica     *int      `json:"tenutaFisica" validate:"omitempty,min=0,max=10"`
		Disponibilita    *int      `json:"disponibilita" validate:"omitempty,min=0,max=10"`
		Empatia          *int      `json:"empatia" validate:"omitempty,min=0,max=10"`
		CapacitaGuida    *int      `json:"capacitaGuida" validate:"omitempty,min=0,max=10"`
		IsActive         *bool     `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	member := r.Context().Value(StaffMemberCtx).(*domain.StaffMember)

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = domain.StaffRole(*req.Role)
	}
	if req.Zones != nil {
		member.Zones = *req.Zones
	}
	if req.PartTime != nil {
		member.PartTime = *req.PartTime
	}
	if req.Jolly != nil {
		member.Jolly = *req.Jolly
	}
	if req.Pendolare != nil {
		member.Pendolare = *req.Pendolare
	}
	if req.RestPreference != nil {
		member.RestPreference = *req.RestPreference
	}
	if req.CarpoolWith != nil {
		member.CarpoolWith = *req.CarpoolWith
	}
	if req.PreferredPartner != nil {
		member.PreferredPartner = *req.PreferredPartner
	}
	if req.NoSplit != nil {
		member.NoSplit = *req.NoSplit
	}
	if req.Professionalita != nil {
		member.Professionalita = *req.Professionalita
	}
	if req.Esperienza != nil {
		member.Esperienza = *req.Esperienza
	}
	if req.TenutaFisica != nil {
		member.TenutaFisica = *req.TenutaFisica
	}
	if req.Disponibilita != nil {
		member.Disponibilita = *req.Disponibilita
	}
	if req.Empatia != nil {
		member.Empatia = *req.Empatia
	}
	if req.CapacitaGuida != nil {
		member.CapacitaGuida = *req.CapacitaGuida
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := utils.ValidateStaffMember(member); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateStaffMember(member); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "aggiornamento non riuscito, riprovare")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "scheda aggiornata", member)
}

func (h *Handler) DeleteStaffMember(w http.ResponseWriter, r *http.Request) {
	member := r.Context().Value(StaffMemberCtx).(*domain.StaffMember)

	if err := h.repository.DeleteStaffMember(member.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "collaboratrice rimossa dall'anagrafica", nil)
}

// GetStaffDashboard restituisce l'anagrafica con il voto sintetico di ogni
// cameriera, come nella vecchia vista a schede.
func (h *Handler) GetStaffDashboard(w http.ResponseWriter, r *http.Request) {
	members, err := h.repository.GetAllStaffMembers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	type dashboardEntry struct {
		*domain.StaffMember
		Rating float64 `json:"rating"`
	}

	entries := make([]dashboardEntry, 0, len(members))
	for _, m := range members {
		entries = append(entries, dashboardEntry{
			StaffMember: m,
			Rating:      m.Rating(),
		})
	}

	h.successResponse(w, r, "dashboard recuperata", entries)
}
