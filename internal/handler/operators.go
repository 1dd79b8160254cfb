package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
	"github.com/boo99ooq/forte-village-housekeeping/internal/utils"
)

func (h *Handler) GetAllOperators(w http.ResponseWriter, r *http.Request) {
	operators, err := h.repository.GetAllOperators()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "elenco operatori recuperato", operators)
}

func (h *Handler) CreateOperator(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		FullName string `json:"fullName" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Role     string `json:"role" validate:"required,oneof=Operatore Amministratore"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// genera una password casuale
	password := utils.GenerateRandomPassword(h.config.NewOperator.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	operator := &domain.Operator{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         domain.OperatorRole(req.Role),
	}

	if err := h.repository.CreateOperator(operator); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "operators_username_key":
				h.badRequest(w, r, errors.New("username gia' in uso"))
			case pgErr.ConstraintName == "operators_email_key":
				h.badRequest(w, r, errors.New("email gia' in uso"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// le credenziali partono via email
	mailMessage := domain.MailMessage{
		Type: "create_operator",
		To:   operator.Email,
		Data: domain.CreateOperatorMailData{
			FullName: req.FullName,
			Username: req.Username,
			Password: password,
		},
	}

	emailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        emailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "operatore creato", operator)
}

func (h *Handler) GetOperator(w http.ResponseWriter, r *http.Request) {
	operator := r.Context().Value(OperatorInfoCtx).(*domain.Operator)
	h.successResponse(w, r, "operatore recuperato", operator)
}

func (h *Handler) UpdateOperator(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName *string `json:"fullName"`
		Email    *string `json:"email" validate:"omitempty,email"`
		Role     *string `json:"role" validate:"omitempty,oneof=Operatore Amministratore"`
		IsActive *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	operator := r.Context().Value(OperatorInfoCtx).(*domain.Operator)

	if req.FullName != nil {
		operator.FullName = *req.FullName
	}
	if req.Email != nil {
		operator.Email = *req.Email
	}
	if req.Role != nil {
		operator.Role = domain.OperatorRole(*req.Role)
	}
	if req.IsActive != nil {
		operator.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateOperator(operator); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "operators_email_key":
				h.badRequest(w, r, errors.New("email gia' in uso"))
			case pgErr.ConstraintName == "operators_username_key":
				h.badRequest(w, r, errors.New("username gia' in uso"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "aggiornamento non riuscito, riprovare")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "operatore aggiornato", operator)
}

func (h *Handler) DeleteOperator(w http.ResponseWriter, r *http.Request) {
	operator := r.Context().Value(OperatorInfoCtx).(*domain.Operator)

	if err := h.repository.DeleteOperator(operator.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "operatore eliminato", nil)
}
