// Package utils contains small helper functions used across the project.
package utils

import "strings"

// MaskEmail hides most of the local part of an address so it can be
// logged: "devin.sanders@example.com" -> "d***@example.com".
func MaskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
