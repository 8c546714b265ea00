package validator

import (
	"net/mail"
	"regexp"
	"unicode/utf8"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

func Username(username string) bool {
	return usernameRe.MatchString(username)
}

func Email(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func Password(password string) bool {
	return utf8.RuneCountInString(password) >= 8 && utf8.RuneCountInString(password) <= 72
}

func TeamName(name string) bool {
	return utf8.RuneCountInString(name) >= 2 && utf8.RuneCountInString(name) <= 60
}
