package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange é um intervalo de dias inclusivo nas duas pontas
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type QuickRangeKind string

const (
	RangeToday     QuickRangeKind = "today"
	RangeLast7     QuickRangeKind = "7d"
	RangeLast30    QuickRangeKind = "30d"
	RangeThisMonth QuickRangeKind = "month"
)

// DayOf retorna a meia-noite do dia local de t
func DayOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: %s posterior a %s", ErrInvalidRange, start.Format(DateLayout), end.Format(DateLayout))
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange lê datas no formato 2006-01-02 no fuso informado
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.Local
	}
	s, err := time.ParseInLocation(DateLayout, start, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: data inicial %q", ErrInvalidRange, start)
	}
	e, err := time.ParseInLocation(DateLayout, end, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: data final %q", ErrInvalidRange, end)
	}
	return NewDateRange(s, e)
}

// QuickRange resolve os filtros rápidos do painel relativos a now
func QuickRange(kind QuickRangeKind, now time.Time, loc *time.Location) (DateRange, error) {
	today := DayOf(now, loc)
	switch kind {
	case RangeToday, "":
		return DateRange{Start: today, End: today}, nil
	case RangeLast7:
		return DateRange{Start: today.AddDate(0, 0, -6), End: today}, nil
	case RangeLast30:
		return DateRange{Start: today.AddDate(0, 0, -29), End: today}, nil
	case RangeThisMonth:
		return DateRange{Start: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()), End: today}, nil
	}
	return DateRange{}, fmt.Errorf("%w: filtro rápido %q", ErrInvalidRange, kind)
}

// Contains verifica se o dia local de t está dentro do intervalo
func (r DateRange) Contains(t time.Time, loc *time.Location) bool {
	day := DayOf(t, loc)
	return !day.Before(DayOf(r.Start, loc)) && !day.After(DayOf(r.End, loc))
}

// Days conta os dias do intervalo incluindo início e fim
func (r DateRange) Days() int {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

func (r DateRange) StartDate() string {
	return r.Start.Format(DateLayout)
}

func (r DateRange) EndDate() string {
	return r.End.Format(DateLayout)
}
