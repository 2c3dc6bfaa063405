package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrValidation      = errors.New("invalid input")
	ErrProfileExists   = errors.New("a profile with that name already exists")
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoProfile       = errors.New("no profile selected; create or select a profile first")
	ErrNoData          = errors.New("no data")
)

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// Today is the local wall-clock date.
func Today() string {
	return time.Now().Format(dateLayout)
}

// NormalizeDate defaults an empty date to today and rejects anything that is not YYYY-MM-DD.
func NormalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return Today(), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", invalid(fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date))
	}
	return date, nil
}

func checkFinite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a number", name)
	}
	return nil
}

func checkPositive(name string, value float64) error {
	if err := checkFinite(name, value); err != nil {
		return err
	}
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func checkRequired(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

func validateProfileID(profileID int64) error {
	if profileID <= 0 {
		return ErrNoProfile
	}
	return nil
}
