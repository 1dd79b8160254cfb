package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/boo99ooq/forte-village-housekeeping/internal/planner"
	"github.com/boo99ooq/forte-village-housekeeping/internal/utils"
)

// plannerParameters costruisce i parametri del motore dalla configurazione.
func (h *Handler) plannerParameters() *planner.Parameters {
	params := &planner.Parameters{
		PriorityZones: h.config.Planning.PriorityZones,
		SplitPoolSize: h.config.Planning.SplitPoolSize,
	}
	if len(h.config.Planning.MergePair) == 2 {
		params.MergePairs = [][2]string{{h.config.Planning.MergePair[0], h.config.Planning.MergePair[1]}}
	}
	return params
}

// zoneResult e' una zona del planning generato con il verdetto gia' pronto.
type zoneResult struct {
	planner.ZoneAssignment
	Verdict planner.Verdict `json:"verdict"`
	Message string          `json:"message"`
}

func (h *Handler) GeneratePlanning(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date      string                           `json:"date" validate:"required"`
		Absentees []string                         `json:"absentees"`
		Counts    map[string]planner.ServiceCounts `json:"counts" validate:"required,dive"`
		// Parametri opzionali che scavalcano la configurazione per questa corsa
		PriorityZones []string `json:"priorityZones"`
		MergePair     []string `json:"mergePair" validate:"omitempty,len=2"`
		SplitPoolSize *int     `json:"splitPoolSize" validate:"omitempty,min=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	params := h.plannerParameters()
	if req.PriorityZones != nil {
		params.PriorityZones = req.PriorityZones
	}
	if len(req.MergePair) == 2 {
		if err := utils.ValidateMergePair(req.MergePair); err != nil {
			h.badRequest(w, r, err)
			return
		}
		params.MergePairs = [][2]string{{req.MergePair[0], req.MergePair[1]}}
	}
	if req.SplitPoolSize != nil {
		params.SplitPoolSize = *req.SplitPoolSize
	}

	staff, err := h.repository.GetAllStaffMembers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	standards, err := h.repository.GetAllTimeStandards()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	demands := planner.ComputeDemand(req.Counts, standards, params.MergePairs)

	result := planner.New(params, staff, req.Absentees).Plan(demands)

	zones := make([]zoneResult, 0, len(result.Zones))
	for _, za := range result.Zones {
		verdict := planner.EvaluateCoverage(za.RequiredHours, za.CoveredHours)
		zones = append(zones, zoneResult{
			ZoneAssignment: za,
			Verdict:        verdict,
			Message:        verdict.Message(),
		})
	}

	h.successResponse(w, r, "planning generato", map[string]any{
		"date":      req.Date,
		"absentees": req.Absentees,
		"zones":     zones,
		"splitPool": result.SplitPool,
		"bench":     result.Bench,
	})
}

// RecomputeVerdict ricalcola ore rese e verdetto di una zona dopo un ritocco
// manuale della squadra, senza salvare niente.
func (h *Handler) RecomputeVerdict(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RequiredHours float64  `json:"requiredHours" validate:"min=0"`
		Team          []string `json:"team"`
		SplitPool     []string `json:"splitPool"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff, err := h.repository.GetAllStaffMembers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	coveredHours := planner.RecomputeHours(req.Team, staff, req.SplitPool)
	verdict := planner.EvaluateCoverage(req.RequiredHours, coveredHours)

	h.successResponse(w, r, "verdetto ricalcolato", map[string]any{
		"coveredHours": coveredHours,
		"verdict":      verdict,
		"message":      verdict.Message(),
	})
}

// SavePlanning cristallizza il planning della giornata nello storico,
// cosi' come lo vede l'ufficio dopo gli eventuali ritocchi manuali.
func (h *Handler) SavePlanning(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date      string                `json:"date" validate:"required"`
		Absentees []string              `json:"absentees"`
		Zones     []domain.PlanningZone `json:"zones" validate:"required,min=1"`
		SplitPool []string              `json:"splitPool"`
		Bench     []string              `json:"bench"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	planning := &domain.Planning{
		Date:      date,
		Absentees: req.Absentees,
		Zones:     req.Zones,
		SplitPool: req.SplitPool,
		Bench:     req.Bench,
	}

	if err := h.repository.CreatePlanning(planning); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "planning cristallizzato nello storico", planning)
}

func (h *Handler) GetAllPlannings(w http.ResponseWriter, r *http.Request) {
	plannings, err := h.repository.GetAllPlannings()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "storico planning recuperato", plannings)
}

func (h *Handler) GetPlanning(w http.ResponseWriter, r *http.Request) {
	planning := r.Context().Value(PlanningRecordCtx).(*domain.Planning)
	h.successResponse(w, r, "planning recuperato", planning)
}

func (h *Handler) DeletePlanning(w http.ResponseWriter, r *http.Request) {
	planning := r.Context().Value(PlanningRecordCtx).(*domain.Planning)

	if err := h.repository.DeletePlanning(planning.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "planning eliminato dallo storico", nil)
}

// SendPlanning mette in coda l'email con il planning per i destinatari
// configurati (governanti e reception piani).
func (h *Handler) SendPlanning(w http.ResponseWriter, r *http.Request) {
	planning := r.Context().Value(PlanningRecordCtx).(*domain.Planning)

	if len(h.config.Planning.MailRecipients) == 0 {
		h.errorResponse(w, r, "nessun destinatario configurato per il planning")
		return
	}

	data := domain.PlanningMailData{
		Date:      planning.Date.Format("02/01/2006"),
		Absentees: planning.Absentees,
		Zones:     planning.Zones,
		SplitPool: planning.SplitPool,
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	for _, recipient := range h.config.Planning.MailRecipients {
		mailMessage := domain.MailMessage{
			Type: "planning",
			To:   recipient,
			Data: data,
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		if err := h.mailChannel.PublishWithContext(
			ctx,
			"",
			"email_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "planning inviato via email", nil)
}
