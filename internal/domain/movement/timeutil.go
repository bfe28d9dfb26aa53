package movement

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Granularity resolución de truncado de los buckets.
type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityHour Granularity = "hour"
)

// ParseGranularity devuelve "hour" solo si se pide explícitamente; cualquier otro valor es "day".
func ParseGranularity(s string) Granularity {
	if Granularity(strings.TrimSpace(s)) == GranularityHour {
		return GranularityHour
	}
	return GranularityDay
}

var strictDate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Formatos ISO-8601 aceptados. Los que llevan zona se respetan; los demás se leen en loc.
var (
	zonedLayouts = []string{
		time.RFC3339, // acepta fracción de segundos al parsear
		"2006-01-02T15:04Z07:00",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
)

// ParseDateLoose interpreta s como YYYY-MM-DD (medianoche local en loc) o como ISO-8601.
// Devuelve ok=false para entrada vacía o no interpretable; nunca falla con error.
// loc nil equivale a time.Local.
func ParseDateLoose(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := strictDate.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		// time.Date normaliza fuera de rango (2025-02-30 → 2025-03-02).
		return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, loc), true
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TruncateBucket formatea t como etiqueta de bucket usando los campos de calendario en loc:
// "YYYY-MM-DD HH:00:00" para hour y "YYYY-MM-DD" para day.
// Las etiquetas tienen ancho fijo, así que el orden lexicográfico es cronológico.
func TruncateBucket(t time.Time, g Granularity, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	day := fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	if g == GranularityHour {
		return fmt.Sprintf("%s %02d:00:00", day, t.Hour())
	}
	return day
}
