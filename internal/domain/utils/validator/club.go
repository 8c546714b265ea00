package validator

import (
	"net/url"
	"unicode/utf8"
)

func ClubName(name string) bool {
	return utf8.RuneCountInString(name) >= 3 && utf8.RuneCountInString(name) <= 60
}

func ClubDescription(description string) bool {
	return utf8.RuneCountInString(description) <= 1000
}

func AnnouncementTitle(title string) bool {
	return utf8.RuneCountInString(title) >= 1 && utf8.RuneCountInString(title) <= 120
}

func Link(link string) bool {
	if link == "" {
		return true
	}
	if _, err := url.ParseRequestURI(link); err != nil {
		return false
	}
	return utf8.RuneCountInString(link) <= 200
}
