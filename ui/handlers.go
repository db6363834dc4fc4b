package ui

import (
	"html/template"
	"net/http"

	"github.com/gomarkdown/markdown"

	"watermetal/domain/metals"
	"watermetal/internal/session"
)

// stationView is one dashboard table row.
type stationView struct {
	No    int
	Cells []float64
	PERI  float64
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := a.currentSession(r)
	a.renderTemplate(w, "dashboard.html", a.dashboardData(sess, ""))
}

// dashboardData assembles everything the dashboard template shows. A nil
// session renders the empty upload state.
func (a *App) dashboardData(sess *session.Session, errMsg string) map[string]interface{} {
	metalNames := make([]string, 0, len(metals.Tracked()))
	for _, m := range metals.Tracked() {
		metalNames = append(metalNames, m.String())
	}

	data := map[string]interface{}{
		"HasData":     false,
		"MetalNames":  metalNames,
		"AIAvailable": a.assistant.Available(),
		"Error":       errMsg,
	}

	if sess == nil || sess.Bundle == nil {
		return data
	}

	periByStation := make(map[int]float64, len(sess.Bundle.Risks))
	for _, sr := range sess.Bundle.Risks {
		periByStation[sr.StationNo] = sr.PERI
	}

	stations := make([]stationView, 0, sess.Table.Len())
	for _, s := range sess.Table.Stations {
		cells := make([]float64, 0, len(metals.Tracked()))
		for _, m := range metals.Tracked() {
			cells = append(cells, s.Concentrations[m])
		}
		stations = append(stations, stationView{
			No:    s.No,
			Cells: cells,
			PERI:  periByStation[s.No],
		})
	}

	data["HasData"] = true
	data["Filename"] = sess.Filename
	data["Fingerprint"] = sess.Fingerprint.Short()
	data["UploadedAt"] = sess.UploadedAt.Format("2006-01-02 15:04:05")
	data["Stations"] = stations
	data["Hotspots"] = sess.Bundle.Hotspots
	data["Contributions"] = sess.Bundle.Contributions
	data["Summaries"] = sess.Bundle.Summaries
	data["HasProjections"] = len(sess.Bundle.Projections) > 0

	if sess.LastAsk != nil {
		data["Ask"] = sess.LastAsk
		if !sess.LastAsk.Failed {
			data["AnswerHTML"] = renderMarkdown(sess.LastAsk.Answer)
		}
	}

	return data
}

// renderMarkdown converts an assistant answer to inline HTML.
func renderMarkdown(src string) template.HTML {
	return template.HTML(markdown.ToHTML([]byte(src), nil, nil))
}
