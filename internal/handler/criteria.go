package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/internal/derive"
)

// dateLayouts accepted for from/to query params.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// CriteriaFromQuery maps the standard list-view query params onto filter
// criteria: q for free text, status and category for the selector axes,
// from/to for the inclusive date range. Unparseable dates are ignored, not
// errors, matching how the pickers behave.
func CriteriaFromQuery(c *gin.Context) derive.Criteria {
	crit := derive.Criteria{
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}
	if t, _, ok := parseDate(c.Query("from")); ok {
		crit.From = &t
	}
	if t, dateOnly, ok := parseDate(c.Query("to")); ok {
		// A bare date as the upper bound means "through that day".
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		crit.To = &t
	}
	return crit
}

func parseDate(raw string) (t time.Time, dateOnly, ok bool) {
	if raw == "" {
		return time.Time{}, false, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, layout == "2006-01-02", true
		}
	}
	return time.Time{}, false, false
}

// ListPayload wraps a filtered list with its count. Message carries the
// empty-state text so clients don't have to synthesize it.
func ListPayload(c *gin.Context, key string, records interface{}, count int, extra gin.H) {
	data := gin.H{key: records, "total": count}
	for k, v := range extra {
		data[k] = v
	}
	resp := NewSuccessResponse(data)
	if count == 0 {
		resp.Message = "no records found"
	}
	c.JSON(http.StatusOK, resp)
}
