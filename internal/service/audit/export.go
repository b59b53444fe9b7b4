package audit

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/medhq/hms-api/internal/model"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{
	"ID", "Timestamp", "User", "User Role", "Action",
	"Resource", "Resource ID", "Status", "Category", "IP Address",
}

// csvTimeLayout renders timestamps the way the dashboard displayed them,
// locale style rather than ISO-8601.
const csvTimeLayout = "1/2/2006, 3:04:05 PM"

// ExportFilename names the download for the given format extension.
func ExportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("audit-logs-export-%s.%s", now.UTC().Format("2006-01-02"), ext)
}

// ExportCSV serializes logs with the fixed column order. An empty trail
// produces a header-only file.
func ExportCSV(logs []model.AuditLog) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, l := range logs {
		row := []string{
			l.ID,
			l.Timestamp.Format(csvTimeLayout),
			l.User,
			l.UserRole,
			l.Action,
			l.Resource,
			l.ResourceID,
			l.Status,
			l.Category,
			l.IPAddress,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON pretty-prints the full records with two-space indentation. An
// empty trail renders as the literal [].
func ExportJSON(logs []model.AuditLog) ([]byte, error) {
	if logs == nil {
		logs = []model.AuditLog{}
	}
	return json.MarshalIndent(logs, "", "  ")
}
