package handlers

import (
	"time"

	"github.com/m04kA/SMC-CabinReservationService/internal/domain"
)

// FormatDate форматирует дату как YYYY-MM-DD; nil остается nil
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}

// ParseDate разбирает YYYY-MM-DD; nil или пустая строка означают "не выбрано"
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
