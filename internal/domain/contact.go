package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// ErrInvalidContact возвращается при некорректных контактных данных
var ErrInvalidContact = errors.New("domain: invalid contact details")

// Contact контактные данные заявителя
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Company *string
	Message *string
}

// Normalize обрезает пробелы и заменяет пустые необязательные поля на nil
func (c Contact) Normalize() Contact {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Company = trimOptional(c.Company)
	c.Message = trimOptional(c.Message)
	return c
}

// Validate проверяет обязательные поля и ограничения длины
func (c Contact) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidContact)
	}
	if utf8.RuneCountInString(c.Name) > MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidContact, MaxNameLength)
	}

	if c.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidContact)
	}
	if len(c.Email) > MaxEmailLength {
		return fmt.Errorf("%w: email is longer than %d characters", ErrInvalidContact, MaxEmailLength)
	}
	addr, err := mail.ParseAddress(c.Email)
	if err != nil || addr.Address != c.Email {
		return fmt.Errorf("%w: email %q is not a valid address", ErrInvalidContact, c.Email)
	}

	if c.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidContact)
	}
	if len(c.Phone) > MaxPhoneLength || !isPhone(c.Phone) {
		return fmt.Errorf("%w: phone %q is not valid", ErrInvalidContact, c.Phone)
	}

	if c.Company != nil && utf8.RuneCountInString(*c.Company) > MaxCompanyLength {
		return fmt.Errorf("%w: company is longer than %d characters", ErrInvalidContact, MaxCompanyLength)
	}
	if c.Message != nil && utf8.RuneCountInString(*c.Message) > MaxMessageLength {
		return fmt.Errorf("%w: message is longer than %d characters", ErrInvalidContact, MaxMessageLength)
	}

	return nil
}

// isPhone допускает цифры, пробелы, скобки, дефисы и ведущий '+'; минимум 5 цифр
func isPhone(s string) bool {
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 5
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
