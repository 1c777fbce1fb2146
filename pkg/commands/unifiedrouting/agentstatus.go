package unifiedrouting

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/tablectl/pkg/clickhouse"
	"github.com/pseudomuto/tablectl/pkg/command"
	"github.com/pseudomuto/tablectl/pkg/output"
)

// timeLayouts are tried in order when parsing --dateTimeStatus.
var timeLayouts = []string{
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.DateOnly,
}

type (
	AgentStatusOptions struct {
		AgentPrimaryEmail string
		DateTimeStatus    *string
	}

	// AgentStatusExecutor prints the presence an agent has now, or had at a
	// given time.
	AgentStatusExecutor struct {
		repo *clickhouse.Repository
		out  *output.Output
		now  func() time.Time
	}
)

func (o *AgentStatusOptions) Define(s *command.Schema) {
	s.String(&o.AgentPrimaryEmail, "agentPrimaryEmail", "a", command.Required(), command.Help("The primary email of the agent."))
	s.NullableString(&o.DateTimeStatus, "dateTimeStatus", "t", command.Help("Report the status at this time instead of now."))
}

func NewAgentStatusExecutor(repo *clickhouse.Repository, out *output.Output) *AgentStatusExecutor {
	return &AgentStatusExecutor{repo: repo, out: out, now: time.Now}
}

func (e *AgentStatusExecutor) Execute(ctx context.Context, opts *AgentStatusOptions) command.Result {
	done := e.out.Progress("Connecting to ClickHouse")
	client, err := e.repo.GetCurrentConnection(ctx)
	done(err)
	if err != nil {
		return command.Fail("Error while checking agent status", err)
	}

	e.out.WriteLine("Checking agent status "+opts.AgentPrimaryEmail, output.Default)

	at, explicit := parseTime(opts.DateTimeStatus)
	if !explicit {
		at = e.now()
	}

	status, err := client.GetAgentStatus(ctx, opts.AgentPrimaryEmail, at.UTC())
	if err != nil {
		if errors.Is(err, clickhouse.ErrNotFound) {
			e.out.WriteLine("No records found for: "+opts.AgentPrimaryEmail, output.Yellow)
			return command.Success()
		}
		return command.Fail("Error while checking agent status", err)
	}

	e.out.WriteLine(opts.AgentPrimaryEmail, output.Default)
	if explicit {
		e.out.Write("at ", output.Default).WriteLine(at.Format(time.DateTime), output.Default)
		e.out.Write("was ", output.Default)
	} else {
		e.out.Write("is ", output.Default)
	}
	e.out.WriteLine(status.StatusText, StatusColor(status.BaseStatus)).
		Write("since ", output.Default).
		WriteLine(status.StartTime.Local().Format(time.DateTime), output.Default)

	return command.Success()
}

// StatusColor returns the color a base presence status is shown in.
func StatusColor(s clickhouse.PresenceStatus) output.Color {
	switch s {
	case clickhouse.PresenceAvailable:
		return output.Green
	case clickhouse.PresenceBusy, clickhouse.PresenceBusyDND:
		return output.Red
	case clickhouse.PresenceAway:
		return output.Yellow
	case clickhouse.PresenceOffline:
		return output.Gray
	default:
		return output.Default
	}
}

// parseTime reads raw in the local time zone. ok is false when raw is unset
// or matches none of the accepted layouts.
func parseTime(raw *string) (t time.Time, ok bool) {
	if raw == nil {
		return time.Time{}, false
	}

	value := strings.TrimSpace(*raw)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
