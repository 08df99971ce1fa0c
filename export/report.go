package export

import (
	"fmt"
	"strconv"

	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/FrumiousOwl/Teses-front-sub000/utils"
	"github.com/google/uuid"
)

// Report is a flattened record list ready for either writer. Views export
// whatever their current filtered set holds.
type Report struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// FileName builds the per-download name, e.g. "hardware-inventory-1a2b3c4d.xlsx".
func FileName(report, ext string) string {
	return fmt.Sprintf("%s-%s.%s", report, uuid.New().String()[:8], ext)
}

func AssetReport(assets []models.HardwareAsset) Report {
	r := Report{
		Title:   "Hardware Inventory",
		Headers: []string{"AID", "Name", "Description", "Purchase Date", "Supplier", "Total Price", "Available", "Deployed", "Defective"},
	}
	for _, a := range assets {
		r.Rows = append(r.Rows, []string{
			strconv.Itoa(a.ID), a.Name, a.Description, a.PurchaseDate, a.Supplier,
			utils.FormatMoney(a.TotalPrice),
			strconv.Itoa(a.Available), strconv.Itoa(a.Deployed), strconv.Itoa(a.Defective),
		})
	}
	return r
}

func RequestReport(requests []models.HardwareRequest) Report {
	r := Report{
		Title:   "SRRF Tickets",
		Headers: []string{"SRRF", "Requester", "Department", "Workstation", "Problem", "Needed By", "Serial No", "Fulfilled"},
	}
	for _, req := range requests {
		fulfilled := "No"
		if req.Fulfilled {
			fulfilled = "Yes"
		}
		r.Rows = append(r.Rows, []string{
			strconv.Itoa(req.ID), req.Requester, req.Department, req.Workstation,
			req.Problem, req.NeededBy, req.SerialNo, fulfilled,
		})
	}
	return r
}

func UserReport(users []models.UserAccount) Report {
	r := Report{
		Title:   "User Accounts",
		Headers: []string{"ID", "Username", "Email", "Phone", "Role"},
	}
	for _, u := range users {
		r.Rows = append(r.Rows, []string{
			strconv.Itoa(u.ID), u.Username, u.Email, u.Phone, u.RoleName,
		})
	}
	return r
}

func AnomalyReport(logs []models.AnomalyLog) Report {
	r := Report{
		Title:   "Anomaly Logs",
		Headers: []string{"ID", "User", "Action", "IP Address", "Detected At", "Flagged"},
	}
	for _, l := range logs {
		flagged := "No"
		if l.Flagged {
			flagged = "Yes"
		}
		r.Rows = append(r.Rows, []string{
			strconv.Itoa(l.ID), l.Username, l.Action, l.IPAddress, l.DetectedAt, flagged,
		})
	}
	return r
}
