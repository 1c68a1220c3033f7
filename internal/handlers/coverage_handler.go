package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
	"github.com/diegoclair/weekend-coverage/internal/domain/entity"
	"github.com/diegoclair/weekend-coverage/internal/log"
	"github.com/go-chi/render"
)

const testEmailResponse = "Test email sent! Check the inbox."

type CoverageHandler struct {
	coverageService contract.CoverageService
	loc             *time.Location
}

func NewCoverageHandler(coverageService contract.CoverageService, loc *time.Location) *CoverageHandler {
	if loc == nil {
		loc = time.UTC
	}

	return &CoverageHandler{
		coverageService: coverageService,
		loc:             loc,
	}
}

type submissionView struct {
	SaturdayDate   string
	SaturdayLabel  string
	SaturdayDoctor string
	SundayDate     string
	SundayLabel    string
	SundayDoctor   string
	SubmittedAt    string
}

type weekendOption struct {
	URL      string
	Label    string
	Selected bool
}

type formPage struct {
	SaturdayDate  string
	SaturdayLabel string
	SundayDate    string
	SundayLabel   string
	Submitted     bool
	Weekends      []weekendOption
}

type listPage struct {
	Submissions []submissionView
}

// HandleIndex lists all submissions, most recent first.
func (h *CoverageHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.coverageService.ListSubmissions()
	if err != nil {
		internalError(w, "coverage.list_submissions", err)
		return
	}

	renderPage(w, r, pageIndex, listPage{Submissions: h.toViews(submissions)})
}

// HandleForm renders the coverage form for ?sat=&sun=, or the upcoming weekend
// when either is missing.
func (h *CoverageHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sat, sun := query.Get("sat"), query.Get("sun")

	if sat == "" || sun == "" {
		upcoming := h.coverageService.UpcomingWeekend()
		sat, sun = upcoming.SaturdayISO(), upcoming.SundayISO()
	}

	page := formPage{
		SaturdayDate:  sat,
		SaturdayLabel: h.longDate(sat),
		SundayDate:    sun,
		SundayLabel:   h.longDate(sun),
		Submitted:     query.Get("submitted") == "1",
	}

	for _, weekend := range h.coverageService.WeekendsOfYear() {
		page.Weekends = append(page.Weekends, weekendOption{
			URL:      formURL(weekend.SaturdayISO(), weekend.SundayISO()),
			Label:    weekend.Label(),
			Selected: weekend.SaturdayISO() == sat,
		})
	}

	renderPage(w, r, pageForm, page)
}

func (h *CoverageHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	submission := entity.Submission{
		SaturdayDate:   r.PostFormValue("saturday_date"),
		SaturdayDoctor: strings.TrimSpace(r.PostFormValue("saturday_doctor")),
		SundayDate:     r.PostFormValue("sunday_date"),
		SundayDoctor:   strings.TrimSpace(r.PostFormValue("sunday_doctor")),
	}

	if err := h.coverageService.Submit(submission); err != nil {
		internalError(w, "coverage.submit", err)
		return
	}

	next, err := h.coverageService.FollowingWeekend(submission.SaturdayDate)
	if err != nil {
		log.WithError(err).WithField("saturday_date", submission.SaturdayDate).Debug("Could not compute the following weekend")
		http.Redirect(w, r, "/weekend-coverage?submitted=1", http.StatusFound)
		return
	}

	http.Redirect(w, r, formURL(next.SaturdayISO(), next.SundayISO())+"&submitted=1", http.StatusFound)
}

// HandleEntryLog shows the full history in submission order.
func (h *CoverageHandler) HandleEntryLog(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.coverageService.History()
	if err != nil {
		internalError(w, "coverage.history", err)
		return
	}

	renderPage(w, r, pageEntryLog, listPage{Submissions: h.toViews(submissions)})
}

func (h *CoverageHandler) HandleSuccess(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, pageSuccess, nil)
}

// HandleTestEmail sends the weekly reminder right away. The response is the
// same whether or not the send worked.
func (h *CoverageHandler) HandleTestEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.coverageService.SendReminder(r.Context()); err != nil {
		log.WithError(err).Error("Test email failed")
	}

	render.PlainText(w, r, testEmailResponse)
}

func (h *CoverageHandler) toViews(submissions []entity.Submission) []submissionView {
	views := make([]submissionView, 0, len(submissions))
	for _, s := range submissions {
		views = append(views, submissionView{
			SaturdayDate:   s.SaturdayDate,
			SaturdayLabel:  h.longDate(s.SaturdayDate),
			SaturdayDoctor: s.SaturdayDoctor,
			SundayDate:     s.SundayDate,
			SundayLabel:    h.longDate(s.SundayDate),
			SundayDoctor:   s.SundayDoctor,
			SubmittedAt:    s.SubmittedAt.In(h.loc).Format("2006-01-02 15:04"),
		})
	}
	return views
}

func (h *CoverageHandler) longDate(value string) string {
	t, err := domain.ParseDate(value, h.loc)
	if err != nil {
		return value
	}
	return domain.LongDate(t)
}

func formURL(sat, sun string) string {
	return fmt.Sprintf("/weekend-coverage?sat=%s&sun=%s", url.QueryEscape(sat), url.QueryEscape(sun))
}
