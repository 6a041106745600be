// Package messages holds the error-kind to message-template table. Lookup is
// an explicit function call with a baked-in default locale; there is no
// ambient locale state.
package messages

import "fmt"

// DefaultLocale is used when a key has no translation for the requested
// locale, and by Get.
const DefaultLocale = "en"

var catalogue = map[string]map[string]string{
	"en": {
		"user.username.unique":       "username is already registered",
		"user.email.unique":          "email is already registered",
		"user.role.invalid":          "role %s is not a known role",
		"user.notfound.id":           "user with id %s not found",
		"agency.phone.unique":        "phone number is already registered",
		"agency.notfound.id":         "agency with id %s not found",
		"category.name.unique":       "category name %s already exists",
		"category.notfound.id":       "category with id %s not found",
		"category.delete.referenced": "category cannot be deleted while complaints still reference it",
		"complaint.notfound.id":      "complaint with id %s not found",
		"complaint.date.future":      "date must not be in the future",
		"error.auth.failed":          "authentication failed",
		"error.jwt.expired":          "token has expired",
		"error.jwt.invalid":          "token is invalid",
		"error.access.denied":        "access denied",
		"error.server.internal":      "an internal server error occurred",
	},
	"id": {
		"user.username.unique":       "Username sudah terdaftar.",
		"user.email.unique":          "Email sudah terdaftar.",
		"user.notfound.id":           "User dengan id %s tidak ditemukan.",
		"agency.phone.unique":        "Nomor telepon sudah terdaftar.",
		"agency.notfound.id":         "Agensi (instansi) dengan id %s tidak ditemukan.",
		"category.name.unique":       "Nama kategori %s sudah ada.",
		"category.notfound.id":       "Kategori dengan id %s tidak ditemukan.",
		"category.delete.referenced": "Kategori ini tidak bisa dihapus karena masih digunakan oleh pengaduan.",
		"complaint.notfound.id":      "Pengaduan dengan id %s tidak ditemukan.",
		"complaint.date.future":      "Tanggal tidak boleh di masa depan.",
		"error.auth.failed":          "Autentikasi gagal.",
		"error.jwt.expired":          "Token JWT telah kedaluwarsa.",
		"error.jwt.invalid":          "Token JWT tidak valid.",
		"error.access.denied":        "Akses ditolak.",
		"error.server.internal":      "Terjadi kesalahan internal pada server.",
	},
}

// Get renders the template registered under key in the default locale.
// Unknown keys render as the key itself so a missing entry is visible rather
// than silent.
func Get(key string, args ...any) string {
	return GetLocale(DefaultLocale, key, args...)
}

// GetLocale renders the template under key for the given locale, falling
// back to the default locale when the locale or key is missing.
func GetLocale(locale, key string, args ...any) string {
	tmpl, ok := catalogue[locale][key]
	if !ok {
		tmpl, ok = catalogue[DefaultLocale][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
