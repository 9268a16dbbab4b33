package domain

// ReviewTeam identifies which team picks up a proposal for human review.
type ReviewTeam string

const (
	TeamEnterprise ReviewTeam = "ENTERPRISE_TEAM"
	TeamSenior     ReviewTeam = "SENIOR_TEAM"
	TeamStandard   ReviewTeam = "STANDARD_TEAM"
	TeamJunior     ReviewTeam = "JUNIOR_TEAM"
)

// String returns the string representation of the team.
func (t ReviewTeam) String() string {
	return string(t)
}
