package memberman

import "fmt"

// PermissionLevel is a user's or site member's permission tier. The integer
// values are part of the wire contract and must not change.
type PermissionLevel int

const (
	PermissionLevelVisitor     PermissionLevel = 10
	PermissionLevelContributor PermissionLevel = 20
	PermissionLevelModerator   PermissionLevel = 30
	PermissionLevelAdmin       PermissionLevel = 40
	PermissionLevelSystemAdmin PermissionLevel = 50
)

func (p PermissionLevel) String() string {
	switch p {
	case PermissionLevelVisitor:
		return "visitor"
	case PermissionLevelContributor:
		return "contributor"
	case PermissionLevelModerator:
		return "moderator"
	case PermissionLevelAdmin:
		return "admin"
	case PermissionLevelSystemAdmin:
		return "system_admin"
	default:
		return fmt.Sprintf("PermissionLevel(%d)", int(p))
	}
}

// Status is the review state of a site application.
type Status int

const (
	StatusPending            Status = 0
	StatusApproved           Status = 1
	StatusDeclined           Status = 2
	StatusCancelledOrMissing Status = 9
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusDeclined:
		return "declined"
	case StatusCancelledOrMissing:
		return "cancelled_or_missing"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// DeclineReasonType categorizes why a site application was declined.
type DeclineReasonType int

const (
	DeclineReasonIncorrectPassword              DeclineReasonType = 1
	DeclineReasonNotSpecifiedOrInappropriate    DeclineReasonType = 2
	DeclineReasonRollPlaying                    DeclineReasonType = 3
	DeclineReasonIncorrectJapanese              DeclineReasonType = 4
	DeclineReasonContainingSensitiveInformation DeclineReasonType = 5
	DeclineReasonForContact                     DeclineReasonType = 6
	DeclineReasonOther                          DeclineReasonType = 9
)

func (d DeclineReasonType) String() string {
	switch d {
	case DeclineReasonIncorrectPassword:
		return "incorrect_password"
	case DeclineReasonNotSpecifiedOrInappropriate:
		return "reason_not_specified_or_inappropriate"
	case DeclineReasonRollPlaying:
		return "roll_playing"
	case DeclineReasonIncorrectJapanese:
		return "incorrect_japanese"
	case DeclineReasonContainingSensitiveInformation:
		return "containing_sensitive_information"
	case DeclineReasonForContact:
		return "for_contact"
	case DeclineReasonOther:
		return "other"
	default:
		return fmt.Sprintf("DeclineReasonType(%d)", int(d))
	}
}
