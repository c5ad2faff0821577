package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"

	"github.com/aideadlines/slack-deadline-bot/internal/domain"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/contract"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/deadline"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/entity"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/query"
	slackcmd "github.com/aideadlines/slack-deadline-bot/internal/slack"
)

// maxListed caps how many conferences a single response shows.
const maxListed = 10

type SlackHandler struct {
	conferences   contract.ConferenceService
	policies      contract.PolicyService
	signingSecret string
}

func New(conferences contract.ConferenceService, policies contract.PolicyService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		conferences:   conferences,
		policies:      policies,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
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
		h.respond(w, h.errorResponse(fmt.Sprintf("%v - try `%s help`", err, s.Command)))
		return
	}

	h.respond(w, h.handleCommand(r, cmd, &s))
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error().Err(err).Msg("failed to encode slash command response")
	}
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdList:
		return h.handleList(r, cmd)
	case slackcmd.CmdSearch:
		return h.handleSearch(r, cmd)
	case slackcmd.CmdUpcoming:
		return h.handleUpcoming(r, cmd)
	case slackcmd.CmdRemind:
		return h.handleRemind(cmd, slashCmd)
	case slackcmd.CmdSubjects:
		return h.handleSubjects(cmd, slashCmd)
	case slackcmd.CmdTimezone:
		return h.handleTimezone(cmd, slashCmd)
	case slackcmd.CmdPause:
		return h.handleEnabled(slashCmd, false)
	case slackcmd.CmdResume:
		return h.handleEnabled(slashCmd, true)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.errorResponse("Unknown command")
	}
}

// recipient resolves who a settings command applies to: the channel when the
// command runs inside one, the invoking user in a DM.
func recipient(slashCmd *slack.SlashCommand) (id, recipientType string) {
	if slashCmd.ChannelName == "directmessage" {
		return slashCmd.UserID, entity.RecipientUser
	}
	return slashCmd.ChannelID, entity.RecipientChannel
}

func (h *SlackHandler) handleList(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	subject := ""
	year := 0
	mode := query.SortByDeadline

	for _, arg := range cmd.Args {
		upper := strings.ToUpper(arg)
		switch {
		case domain.ValidSubject(upper):
			subject = upper
		case query.ValidSortMode(query.SortMode(strings.ToLower(arg))):
			mode = query.SortMode(strings.ToLower(arg))
		default:
			y, err := strconv.Atoi(arg)
			if err != nil || y < domain.MinYear || y > domain.MaxYear {
				return h.errorResponse(fmt.Sprintf("Unrecognized filter `%s` - use a subject tag, a year, or a sort mode", arg))
			}
			year = y
		}
	}

	confs, err := h.conferences.List(r.Context(), subject, year, mode)
	if err != nil {
		log.Error().Err(err).Msg("list command failed")
		return h.errorResponse("Could not load conferences, try again later")
	}

	return h.conferenceList(confs, "No conferences match that filter.")
}

func (h *SlackHandler) handleSearch(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.errorResponse("Tell me what to search for: `search <query>`")
	}

	confs, err := h.conferences.Search(r.Context(), strings.Join(cmd.Args, " "))
	if err != nil {
		log.Error().Err(err).Msg("search command failed")
		return h.errorResponse("Could not load conferences, try again later")
	}

	return h.conferenceList(confs, "Nothing found.")
}

func (h *SlackHandler) handleUpcoming(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	days := 30
	if len(cmd.Args) > 0 {
		d, err := strconv.Atoi(cmd.Args[0])
		if err != nil || d <= 0 {
			return h.errorResponse("Days must be a positive number: `upcoming 14`")
		}
		days = d
	}

	reminders, err := h.conferences.Upcoming(r.Context(), days)
	if err != nil {
		log.Error().Err(err).Msg("upcoming command failed")
		return h.errorResponse("Could not load conferences, try again later")
	}

	if len(reminders) == 0 {
		return h.ephemeral(fmt.Sprintf("No deadlines within %d days. :tada:", days))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Deadlines within %d days:*\n", days)
	for _, rem := range reminders {
		fmt.Fprintf(&b, "• *%s %d* - %s in *%d days* (%s)\n",
			rem.Conference.Title, rem.Conference.Year, rem.Deadline.Label,
			rem.DaysLeft, rem.Deadline.At.Format("2006-01-02 15:04 MST"))
	}
	return h.ephemeral(b.String())
}

func (h *SlackHandler) handleRemind(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.errorResponse("Give me the days: `remind 3,7,30`")
	}

	var days []int
	for _, part := range strings.Split(strings.Join(cmd.Args, ","), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil {
			return h.errorResponse(fmt.Sprintf("`%s` is not a number of days", part))
		}
		days = append(days, d)
	}

	id, rtype := recipient(slashCmd)
	policy, err := h.policies.SetReminderDays(id, rtype, days)
	if err != nil {
		return h.errorResponse(fmt.Sprintf("Could not update reminders: %v", err))
	}

	return h.ephemeral(fmt.Sprintf(":white_check_mark: Reminders set for %s before each deadline.", formatDays(policy.ReminderDays)))
}

func (h *SlackHandler) handleSubjects(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.errorResponse("Give me subject tags: `subjects ML,NLP` or `subjects all`")
	}

	id, rtype := recipient(slashCmd)

	if strings.EqualFold(cmd.Args[0], "all") {
		if _, err := h.policies.SetSubjects(id, rtype, nil); err != nil {
			return h.errorResponse(fmt.Sprintf("Could not update subjects: %v", err))
		}
		return h.ephemeral(":white_check_mark: You will get reminders for *all* subjects.")
	}

	var subjects []string
	for _, part := range strings.Split(strings.Join(cmd.Args, ","), ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			subjects = append(subjects, part)
		}
	}

	policy, err := h.policies.SetSubjects(id, rtype, subjects)
	if err != nil {
		return h.errorResponse(fmt.Sprintf("Could not update subjects: %v", err))
	}

	return h.ephemeral(fmt.Sprintf(":white_check_mark: Reminders limited to: %s", strings.Join(policy.Subjects, ", ")))
}

func (h *SlackHandler) handleTimezone(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.errorResponse("Give me an IANA zone: `timezone Europe/Vienna`")
	}

	id, rtype := recipient(slashCmd)
	policy, err := h.policies.SetTimezone(id, rtype, cmd.Args[0])
	if err != nil {
		return h.errorResponse(fmt.Sprintf("Could not update timezone: %v", err))
	}

	return h.ephemeral(fmt.Sprintf(":white_check_mark: Deadlines will also be shown in %s.", policy.Timezone))
}

func (h *SlackHandler) handleEnabled(slashCmd *slack.SlashCommand, enabled bool) *slack.Msg {
	id, rtype := recipient(slashCmd)
	if _, err := h.policies.SetEnabled(id, rtype, enabled); err != nil {
		return h.errorResponse(fmt.Sprintf("Could not update notifications: %v", err))
	}

	if enabled {
		return h.ephemeral(":bell: Reminders resumed.")
	}
	return h.ephemeral(":no_bell: Reminders paused. `resume` turns them back on.")
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	id, rtype := recipient(slashCmd)
	policy, err := h.policies.GetOrCreate(id, rtype)
	if err != nil {
		return h.errorResponse("Could not load your settings, try again later")
	}

	state := "paused :no_bell:"
	if policy.Enabled {
		state = "active :bell:"
	}
	subjects := "all"
	if len(policy.Subjects) > 0 {
		subjects = strings.Join(policy.Subjects, ", ")
	}

	return h.ephemeral(fmt.Sprintf(
		"*Reminder settings*\n• Status: %s\n• Remind me: %s before each deadline\n• Subjects: %s\n• Timezone: %s",
		state, formatDays(policy.ReminderDays), subjects, policy.Timezone))
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return h.ephemeral(slackcmd.GetHelpText())
}

func (h *SlackHandler) conferenceList(confs []entity.Conference, emptyText string) *slack.Msg {
	if len(confs) == 0 {
		return h.ephemeral(emptyText)
	}

	shown := confs
	if len(shown) > maxListed {
		shown = shown[:maxListed]
	}

	var b strings.Builder
	for _, c := range shown {
		fmt.Fprintf(&b, "• *%s %d*", c.Title, c.Year)
		if next := nextDeadlineLine(&c); next != "" {
			b.WriteString(next)
		}
		if c.Place != "" {
			fmt.Fprintf(&b, " - %s", c.Place)
		}
		b.WriteString("\n")
	}
	if len(confs) > maxListed {
		fmt.Fprintf(&b, "_…and %d more. Narrow it down with a subject or year._\n", len(confs)-maxListed)
	}

	return h.ephemeral(b.String())
}

// nextDeadlineLine renders a conference's next deadline, falling back to the
// most recently expired one so closed conferences still show context.
func nextDeadlineLine(c *entity.Conference) string {
	now := time.Now()
	next := deadline.Next(c, now)
	if next == nil {
		return " - no deadline announced"
	}
	if left := deadline.DaysLeft(now, next.At); left > 0 {
		return fmt.Sprintf(" - %s %s (%d days)", next.Label, next.At.Format("2006-01-02 15:04 MST"), left)
	}
	return fmt.Sprintf(" - %s passed on %s", next.Label, next.At.Format("2006-01-02"))
}

func (h *SlackHandler) ephemeral(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) errorResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf(":warning: %s", text),
	}
}

func formatDays(days []int) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ") + " days"
}
