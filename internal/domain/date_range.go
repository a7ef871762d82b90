package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDateExpression = errors.New("invalid date expression")

// DateRange é um intervalo fechado [Start, End] resolvido a partir de uma expressão de data.
// Label é apenas descritivo.
type DateRange struct {
	Start time.Time
	End   time.Time
	Label string
}

const rangeSeparator = " to "

// ResolveDateRange converte expressões como "today", "last week", "ytd", "2024-01-15" ou
// "2024-01-01 to 2024-01-31" em um intervalo concreto no fuso de now.
// Períodos "this ..." e "ytd" terminam no fim do dia atual, não no fim do período.
func ResolveDateRange(expression string, now time.Time) (DateRange, error) {
	normalized := strings.ToLower(strings.TrimSpace(expression))

	switch normalized {
	case "today":
		return DateRange{Start: StartOfDay(now), End: EndOfDay(now), Label: "Today"}, nil
	case "yesterday":
		yesterday := now.AddDate(0, 0, -1)
		return DateRange{Start: StartOfDay(yesterday), End: EndOfDay(yesterday), Label: "Yesterday"}, nil
	case "this week":
		return DateRange{Start: StartOfWeek(now), End: EndOfDay(now), Label: "This week"}, nil
	case "last week":
		return DateRange{
			Start: StartOfWeek(now).AddDate(0, 0, -7),
			End:   EndOfWeek(now).AddDate(0, 0, -7),
			Label: "Last week",
		}, nil
	case "this month":
		return DateRange{Start: StartOfMonth(now), End: EndOfDay(now), Label: "This month"}, nil
	case "last month":
		previousMonth := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: StartOfMonth(previousMonth), End: EndOfMonth(previousMonth), Label: "Last month"}, nil
	case "ytd", "this ytd", "year to date", "this year to date":
		return DateRange{Start: StartOfYear(now), End: EndOfDay(now), Label: "Year to date"}, nil
	case "last year":
		previousYear := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: StartOfYear(previousYear), End: EndOfYear(previousYear), Label: "Last year"}, nil
	}

	if normalized == "" {
		return DateRange{}, fmt.Errorf("%w: empty expression", ErrInvalidDateExpression)
	}

	if date, ok := parseISODate(normalized, now.Location()); ok {
		return DateRange{Start: StartOfDay(date), End: EndOfDay(date), Label: date.Format(time.DateOnly)}, nil
	}

	parts := strings.Split(normalized, rangeSeparator)
	if len(parts) != 2 {
		return DateRange{}, fmt.Errorf("%w: %s", ErrInvalidDateExpression, expression)
	}

	startDate, okStart := parseISODate(parts[0], now.Location())
	endDate, okEnd := parseISODate(parts[1], now.Location())
	if !okStart || !okEnd {
		return DateRange{}, fmt.Errorf("%w: %s", ErrInvalidDateExpression, expression)
	}

	if startDate.After(endDate) {
		return DateRange{}, fmt.Errorf("%w: start date %s is after end date %s",
			ErrInvalidDateExpression, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))
	}

	return DateRange{
		Start: StartOfDay(startDate),
		End:   EndOfDay(endDate),
		Label: fmt.Sprintf("%s to %s", startDate.Format(time.DateOnly), endDate.Format(time.DateOnly)),
	}, nil
}

// parseISODate aceita apenas yyyy-mm-dd de calendário válido (2023-02-30 é rejeitado)
func parseISODate(value string, location *time.Location) (time.Time, bool) {
	date, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(value), location)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay retorna 23:59:59.999 do mesmo dia
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// StartOfWeek considera segunda-feira como primeiro dia da semana (ISO)
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t.AddDate(0, 0, -offset))
}

func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	// Dia zero do mês seguinte é o último dia do mês atual
	return EndOfDay(time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()))
}

func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func EndOfYear(t time.Time) time.Time {
	return EndOfDay(time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location()))
}
