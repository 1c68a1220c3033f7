package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/diegoclair/weekend-coverage/internal/domain"
	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
	"github.com/diegoclair/weekend-coverage/internal/log"
	slackcmd "github.com/diegoclair/weekend-coverage/internal/slack"
	"github.com/go-chi/render"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	coverageService contract.CoverageService
	signingSecret   string
	appURL          string
}

func NewSlackHandler(coverageService contract.CoverageService, signingSecret, appURL string) *SlackHandler {
	return &SlackHandler{
		coverageService: coverageService,
		signingSecret:   signingSecret,
		appURL:          appURL,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		log.WithError(err).Warn("Rejected slash command with an invalid signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		render.JSON(w, r, h.createErrorResponse(err.Error()+". Try `/coverage help`"))
		return
	}

	render.JSON(w, r, h.handleCommand(r, cmd))
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdList:
		return h.handleList(cmd)
	case slackcmd.CmdNext:
		return h.handleNext()
	case slackcmd.CmdRemind:
		return h.handleRemind(r)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleList(cmd *slackcmd.Command) *slack.Msg {
	limit := slackcmd.DefaultListLimit
	if len(cmd.Args) > 0 {
		n, err := strconv.Atoi(cmd.Args[0])
		if err != nil || n <= 0 {
			return h.createErrorResponse("The limit must be a positive number: `/coverage list 10`")
		}
		limit = n
	}

	submissions, err := h.coverageService.ListSubmissions()
	if err != nil {
		log.WithError(err).Error("slack.list_submissions")
		return h.createErrorResponse("Could not load submissions")
	}

	if len(submissions) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No coverage submitted yet.",
		}
	}

	if len(submissions) > limit {
		submissions = submissions[:limit]
	}

	var list strings.Builder
	list.WriteString("*Latest coverage submissions:*\n")
	for _, s := range submissions {
		list.WriteString(fmt.Sprintf("• %s: %s / %s: %s\n",
			s.SaturdayDate, displayDoctor(s.SaturdayDoctor), s.SundayDate, displayDoctor(s.SundayDoctor)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleNext() *slack.Msg {
	weekend := h.coverageService.UpcomingWeekend()

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text: fmt.Sprintf("📅 Upcoming weekend: %s & %s\n<%s|Submit Coverage>",
			domain.LongDate(weekend.Saturday), domain.LongDate(weekend.Sunday),
			h.appURL+formURL(weekend.SaturdayISO(), weekend.SundayISO())),
	}
}

func (h *SlackHandler) handleRemind(r *http.Request) *slack.Msg {
	if err := h.coverageService.SendReminder(r.Context()); err != nil {
		log.WithError(err).Error("slack.send_reminder")
		return h.createErrorResponse("Failed to send the weekly reminder")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Weekly coverage reminder sent.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func displayDoctor(name string) string {
	if name == "" {
		return "_none_"
	}
	return name
}
