package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/boo99ooq/forte-village-housekeeping/internal/config"
	"github.com/boo99ooq/forte-village-housekeeping/internal/domain"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * configurazione
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("impossibile leggere la configurazione", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * client SMTP
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("impossibile creare il client di posta", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// verifica subito che il server di posta risponda
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("impossibile connettersi al server di posta", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("impossibile connettersi a RabbitMQ", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("impossibile aprire il canale", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"email_queue", // nome della coda
		true,          // durevole
		false,         // niente auto-delete: la coda resta anche senza consumatori
		false,         // non esclusiva
		false,         // aspettiamo la conferma di RabbitMQ
		nil,           // argomenti extra
	)
	if err != nil {
		logger.Error("impossibile dichiarare la coda", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name, // coda
		"",     // identificativo del consumatore, lo assegna RabbitMQ
		false,  // niente auto-ack
		false,  // non esclusiva
		false,  // no-local non e' supportato da RabbitMQ, deve restare false
		false,  // aspettiamo la risposta di RabbitMQ
		nil,    // argomenti extra
	)
	if err != nil {
		logger.Error("impossibile consumare i messaggi", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("messaggio ricevuto", slog.String("message", string(msg.Body)))
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("deserializzazione del messaggio non riuscita", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.Sender); err != nil {
					logger.Error("impossibile impostare il mittente", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("impossibile impostare il destinatario", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch mailMessage.Type {
				case "create_operator":
					tmpl, err := template.ParseFiles("./templates/new_operator_email.html")
					if err != nil {
						logger.Error("impossibile leggere il modello email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("impossibile comporre il corpo dell'email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Gestionale Housekeeping - Credenziali di accesso")
				case "reset_password":
					tmpl, err := template.ParseFiles("./templates/reset_password_otp_email.html")
					if err != nil {
						logger.Error("impossibile leggere il modello email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("impossibile comporre il corpo dell'email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Gestionale Housekeeping - Reimposta la password")
				case "planning":
					tmpl, err := template.ParseFiles("./templates/planning_email.html")
					if err != nil {
						logger.Error("impossibile leggere il modello email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("impossibile comporre il corpo dell'email", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Planning Camere del Giorno")
				default:
					logger.Error("tipo di email non supportato", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("invio dell'email non riuscito", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // rimettiamo il messaggio in coda
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("in attesa di messaggi... (CTRL+C per uscire)")
	<-sigChan

	slog.Info("arresto del mail worker...")
	cancel()
	wg.Wait()
	slog.Info("mail worker arrestato correttamente")
}
