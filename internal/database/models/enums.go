package models

// UserRole represents the application-level role of a user
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleUser    UserRole = "user"
)

// TeamMemberRole represents the role of a user within a team
type TeamMemberRole string

const (
	TeamMemberRoleMember TeamMemberRole = "member"
	TeamMemberRoleSenior TeamMemberRole = "senior"
	TeamMemberRoleLead   TeamMemberRole = "lead"
)

// CustomerStatus represents the lifecycle status of a customer
type CustomerStatus string

const (
	CustomerStatusLead     CustomerStatus = "lead"
	CustomerStatusProspect CustomerStatus = "prospect"
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// LeadStatus represents the qualification status of a lead
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusUnqualified LeadStatus = "unqualified"
	LeadStatusConverted   LeadStatus = "converted"
	LeadStatusLost        LeadStatus = "lost"
)

// Source represents where a customer, lead or opportunity originated
type Source string

const (
	SourceWebsite       Source = "website"
	SourceReferral      Source = "referral"
	SourceColdCall      Source = "cold_call"
	SourceEmail         Source = "email"
	SourceSocialMedia   Source = "social_media"
	SourceAdvertisement Source = "advertisement"
	SourceEvent         Source = "event"
	SourceOther         Source = "other"
)

// OpportunityStatus represents the terminal state of an opportunity
type OpportunityStatus string

const (
	OpportunityStatusOpen      OpportunityStatus = "open"
	OpportunityStatusWon       OpportunityStatus = "won"
	OpportunityStatusLost      OpportunityStatus = "lost"
	OpportunityStatusCancelled OpportunityStatus = "cancelled"
)

// ActivityType represents the kind of a scheduled activity
type ActivityType string

const (
	ActivityTypeCall     ActivityType = "call"
	ActivityTypeEmail    ActivityType = "email"
	ActivityTypeMeeting  ActivityType = "meeting"
	ActivityTypeTask     ActivityType = "task"
	ActivityTypeNote     ActivityType = "note"
	ActivityTypeDemo     ActivityType = "demo"
	ActivityTypeProposal ActivityType = "proposal"
	ActivityTypeFollowUp ActivityType = "follow_up"
)

// ActivityStatus represents the progress of an activity
type ActivityStatus string

const (
	ActivityStatusPending    ActivityStatus = "pending"
	ActivityStatusInProgress ActivityStatus = "in_progress"
	ActivityStatusCompleted  ActivityStatus = "completed"
	ActivityStatusCancelled  ActivityStatus = "cancelled"
)

// ActivityPriority represents the urgency of an activity
type ActivityPriority string

const (
	ActivityPriorityLow    ActivityPriority = "low"
	ActivityPriorityMedium ActivityPriority = "medium"
	ActivityPriorityHigh   ActivityPriority = "high"
	ActivityPriorityUrgent ActivityPriority = "urgent"
)
