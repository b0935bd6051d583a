package validate

import "regexp"

// PasswordMessage — фиксированное сообщение об ошибке формата пароля.
const PasswordMessage = "Password must be 8+ characters with only letters (upper/lowercase) and digits"

var passwordRe = regexp.MustCompile(`^[A-Za-z0-9]{8,}$`)

// Password проверяет формат пароля signup-формы: минимум 8 символов,
// только латинские буквы и цифры, при этом обязательны хотя бы одна
// строчная, одна заглавная буква и одна цифра. При успехе message пустой.
func Password(candidate string) (ok bool, message string) {
	if !passwordRe.MatchString(candidate) {
		return false, PasswordMessage
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range candidate {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return false, PasswordMessage
	}
	return true, ""
}
