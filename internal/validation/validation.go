// Package validation checks lead submissions before they reach the
// store. Each rule has its own error so handlers can surface the exact
// violation to the user; a failed check means the store is never called.
package validation

import (
	"errors"
	"regexp"

	"brasiliaimoveis/server/internal/models"
)

var (
	ErrContactFieldsRequired   = errors.New("Nome, email, telefone e mensagem são obrigatórios")
	ErrFinancingFieldsRequired = errors.New("Todos os campos são obrigatórios")
	ErrPropertyValueInvalid    = errors.New("Valor do imóvel deve ser maior que zero")
	ErrDownPaymentInvalid      = errors.New("Valor da entrada deve ser maior que zero")
	ErrDownPaymentTooHigh      = errors.New("Valor da entrada deve ser menor que o valor do imóvel")
	ErrTermYearsOutOfRange     = errors.New("Prazo deve estar entre 15 e 35 anos")
	ErrInsuranceFieldsRequired = errors.New("Nome, email e telefone são obrigatórios")
	ErrEmailInvalid            = errors.New("Email inválido")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateContact(req *models.ContactRequest) error {
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Message == "" {
		return ErrContactFieldsRequired
	}
	return nil
}

func ValidateFinancing(req *models.FinancingRequest) error {
	if req.Name == "" || req.Email == "" || req.Phone == "" ||
		req.PropertyValue == 0 || req.DownPayment == 0 || req.TermYears == 0 {
		return ErrFinancingFieldsRequired
	}
	if req.PropertyValue <= 0 {
		return ErrPropertyValueInvalid
	}
	if req.DownPayment <= 0 {
		return ErrDownPaymentInvalid
	}
	if req.DownPayment >= req.PropertyValue {
		return ErrDownPaymentTooHigh
	}
	if req.TermYears < 15 || req.TermYears > 35 {
		return ErrTermYearsOutOfRange
	}
	return nil
}

func ValidateInsurance(req *models.InsuranceRequest) error {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return ErrInsuranceFieldsRequired
	}
	if !emailPattern.MatchString(req.Email) {
		return ErrEmailInvalid
	}
	return nil
}
