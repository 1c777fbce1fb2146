package clickhouse

import (
	"time"

	"github.com/google/uuid"
)

// PresenceStatus is the base status an agent presence maps to.
type PresenceStatus uint8

const (
	PresenceAvailable PresenceStatus = iota + 1
	PresenceBusy
	PresenceBusyDND
	PresenceAway
	PresenceOffline
	PresenceInactive
)

func (s PresenceStatus) String() string {
	switch s {
	case PresenceAvailable:
		return "Available"
	case PresenceBusy:
		return "Busy"
	case PresenceBusyDND:
		return "Busy - DND"
	case PresenceAway:
		return "Away"
	case PresenceOffline:
		return "Offline"
	case PresenceInactive:
		return "Inactive"
	default:
		return "Unknown"
	}
}

type (
	// Publisher owns solutions and provides the prefix for schema names.
	Publisher struct {
		ID                uuid.UUID
		UniqueName        string
		FriendlyName      string
		Prefix            string
		OptionValuePrefix int32
		Description       string
		CreatedOn         time.Time
		CreatedBy         string
	}

	// Solution groups customizations. Only unmanaged solutions accept changes.
	Solution struct {
		ID              uuid.UUID
		UniqueName      string
		FriendlyName    string
		IsManaged       bool
		PublisherID     uuid.UUID
		PublisherName   string
		PublisherPrefix string
	}

	// AppModule is a model-driven app.
	AppModule struct {
		ID         uuid.UUID
		Name       string
		UniqueName string
	}

	// AppModuleRole associates a security role with an app module.
	AppModuleRole struct {
		AppModuleID   uuid.UUID
		AppModuleName string
		RoleID        uuid.UUID
		RoleName      string
	}

	// AgentStatus is the presence an agent had during an interval.
	AgentStatus struct {
		AgentEmail string
		StatusText string
		BaseStatus PresenceStatus
		StartTime  time.Time
	}

	// Attribute records column metadata that has no ClickHouse counterpart.
	Attribute struct {
		TableName     string
		SchemaName    string
		DisplayName   string
		Description   string
		AttributeType string
		RequiredLevel string
		IsAudited     bool
		Properties    map[string]string
		SolutionID    uuid.UUID
		CreatedOn     time.Time
	}

	// CascadeConfiguration holds the cascade behavior per operation.
	CascadeConfiguration struct {
		Assign   string
		Archive  string
		Share    string
		Unshare  string
		Delete   string
		Merge    string
		Reparent string
	}

	// Relationship is a one-to-many relationship between two tables,
	// materialized as a lookup column on the referencing table.
	Relationship struct {
		ID               uuid.UUID
		SchemaName       string
		ReferencingTable string
		ReferencedTable  string
		LookupColumn     string
		LookupName       string
		MenuBehavior     string
		MenuGroup        *string
		MenuLabel        *string
		MenuOrder        *int32
		Cascade          CascadeConfiguration
		SolutionID       uuid.UUID
		CreatedOn        time.Time
	}

	// SolutionComponent links an object to the solution it was created in.
	SolutionComponent struct {
		SolutionID    uuid.UUID
		ComponentType string
		ObjectName    string
		CreatedOn     time.Time
	}
)
