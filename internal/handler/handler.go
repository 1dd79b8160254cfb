package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/it"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	it_translations "github.com/go-playground/validator/v10/translations/it"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/boo99ooq/forte-village-housekeeping/internal/config"
	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/boo99ooq/forte-village-housekeeping/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	it := it.New()
	uni := ut.New(it, it)
	trans, _ := uni.GetTranslator("it")
	if err := it_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Autenticazione
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Tutto il resto richiede il login
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/operators", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.OperatorRole{domain.RoleAmministratore})).Post("/", h.CreateOperator)
			r.Get("/", h.GetAllOperators)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.operatorInfo)
				r.Get("/", h.GetOperator)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.OperatorRole{domain.RoleAmministratore})).Patch("/", h.UpdateOperator)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.OperatorRole{domain.RoleAmministratore})).Delete("/", h.DeleteOperator)
			})
		})

		// Anagrafica collaboratrici: la gestione e' aperta a tutto l'ufficio
		r.Route("/staff", func(r chi.Router) {
			r.Post("/", h.CreateStaffMember)
			r.Get("/", h.GetAllStaffMembers)
			r.Get("/dashboard", h.GetStaffDashboard)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.staffMember)
				r.Get("/", h.GetStaffMember)
				r.Patch("/", h.UpdateStaffMember)
				r.Delete("/", h.DeleteStaffMember)
			})
		})

		r.Route("/time-standards", func(r chi.Router) {
			r.Get("/", h.GetAllTimeStandards)
			r.Put("/{zone}", h.UpsertTimeStandard)
		})

		r.Route("/plannings", func(r chi.Router) {
			r.Post("/generate", h.GeneratePlanning)
			r.Post("/verdict", h.RecomputeVerdict)
			r.Post("/", h.SavePlanning) // "cristallizza e salva"
			r.Get("/", h.GetAllPlannings)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.planningRecord)
				r.Get("/", h.GetPlanning)
				r.With(h.RequiredRole([]domain.OperatorRole{domain.RoleAmministratore})).Delete("/", h.DeletePlanning)
				r.Post("/send", h.SendPlanning)
			})
		})
	})
}
