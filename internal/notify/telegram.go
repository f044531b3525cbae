// Package notify announces new leads to the brokerage's Telegram chat.
// Delivery is best-effort and asynchronous: events flow through an
// in-memory queue and a failed send is logged, never retried.
package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"brasiliaimoveis/server/internal/masks"
	"brasiliaimoveis/server/internal/models"
)

type Service struct {
	logger   *logrus.Logger
	client   *http.Client
	botToken string
	chatID   string
	queue    *EventQueue
}

// NewService builds the notifier. An empty bot token or chat ID leaves
// it disabled: pushes become no-ops.
func NewService(botToken, chatID string, logger *logrus.Logger) *Service {
	s := &Service{
		logger: logger,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		botToken: botToken,
		chatID:   chatID,
		queue:    NewEventQueue(64, logger),
	}
	s.queue.Subscribe(func(event Event) error {
		return s.SendMessage(event.Message)
	})
	return s
}

// Start begins draining the event queue.
func (s *Service) Start() {
	s.queue.Start()
}

// Stop closes the event queue.
func (s *Service) Stop() {
	s.queue.Close()
}

// Enabled reports whether the notifier is configured.
func (s *Service) Enabled() bool {
	return s != nil && s.botToken != "" && s.chatID != ""
}

func (s *Service) push(kind, message string) {
	if !s.Enabled() {
		return
	}
	if err := s.queue.Push(Event{Kind: kind, Message: message}); err != nil {
		s.logger.WithError(err).WithField("kind", kind).Warn("Dropped lead notification")
	}
}

// SendMessage sends a message to the configured Telegram chat.
func (s *Service) SendMessage(message string) error {
	if !s.Enabled() {
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)
	payload := map[string]interface{}{
		"chat_id":    s.chatID,
		"text":       message,
		"parse_mode": "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %v", err)
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send message to Telegram API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return errors.New("invalid bot token - please check your token from @BotFather")
		case http.StatusBadRequest:
			return fmt.Errorf("invalid chat ID or message format: %s", string(body))
		case http.StatusForbidden:
			return errors.New("bot was blocked by the user or chat")
		case http.StatusNotFound:
			return errors.New("bot not found - please check your token from @BotFather")
		default:
			return fmt.Errorf("Telegram API error (status %d): %s", resp.StatusCode, string(body))
		}
	}

	return nil
}

// NotifyContact announces a new contact inquiry.
func (s *Service) NotifyContact(lead *models.ContactLead) {
	message := fmt.Sprintf(
		"<b>📩 Novo contato recebido!</b>\n\n"+
			"👤 %s\n"+
			"📧 %s\n"+
			"📱 %s\n\n"+
			"💬 %s",
		lead.Name,
		lead.Email,
		masks.FormatPhone(lead.Phone),
		lead.Message,
	)
	if lead.PropertyID != nil {
		message += fmt.Sprintf("\n\n🏠 Imóvel: %s", *lead.PropertyID)
	}
	s.push("contact", message)
}

// NotifyFinancing announces a new financing request.
func (s *Service) NotifyFinancing(lead *models.FinancingLead) {
	message := fmt.Sprintf(
		"<b>💰 Nova solicitação de financiamento!</b>\n\n"+
			"👤 %s\n"+
			"📧 %s\n"+
			"📱 %s\n\n"+
			"🏠 Valor do imóvel: %s\n"+
			"💵 Entrada: %s\n"+
			"📅 Prazo: %d anos",
		lead.Name,
		lead.Email,
		masks.FormatPhone(lead.Phone),
		masks.FormatCurrency(lead.PropertyValue),
		masks.FormatCurrency(lead.DownPayment),
		lead.TermYears,
	)
	s.push("financing", message)
}

// NotifyInsurance announces a new insurance request.
func (s *Service) NotifyInsurance(lead *models.InsuranceLead) {
	message := fmt.Sprintf(
		"<b>🛡️ Nova solicitação de seguro!</b>\n\n"+
			"👤 %s\n"+
			"📧 %s\n"+
			"📱 %s",
		lead.Name,
		lead.Email,
		masks.FormatPhone(lead.Phone),
	)
	s.push("insurance", message)
}
