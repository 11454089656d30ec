package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountType distinguishes members from restaurant staff.
type AccountType string

const (
	AccountTypeUser       AccountType = "user"
	AccountTypeRestaurant AccountType = "restaurant"
)

// restaurantEmail is the demo address that signs in as restaurant staff.
const restaurantEmail = "restaurant@example.com"

// AccountTypeFor derives the account type from the sign-in email.
func AccountTypeFor(email string) AccountType {
	if strings.EqualFold(strings.TrimSpace(email), restaurantEmail) {
		return AccountTypeRestaurant
	}
	return AccountTypeUser
}

// ThemeMode is the colour scheme preference.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark || m == ThemeSystem
}

// Supported UI languages.
var Languages = []string{"en", "ar", "fr"}

// ValidLanguage reports whether lang is a supported UI language.
func ValidLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Preferences are per-user UI settings.
type Preferences struct {
	Theme    ThemeMode `json:"theme"`
	Language string    `json:"language"`
}

// DefaultPreferences matches a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeSystem, Language: "en"}
}

// User is an app account. Users live only in process memory.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone_number"`
	PasswordHash string      `json:"-"`
	AccountType  AccountType `json:"account_type"`
	Preferences  Preferences `json:"preferences"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// QRPayload is the content encoded in the member's QR code.
type QRPayload struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
