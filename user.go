package aihorde

import "github.com/go-openapi/strfmt"

// UserDetails is the horde's view of an account. It is only ever decoded
// from responses; fields the server leaves out stay at their zero value.
type UserDetails struct {
	// Username is the display name, including the #id suffix.
	Username string `json:"username,omitempty"`

	ID int64 `json:"id,omitempty"`

	// Kudos is the current balance.
	Kudos float64 `json:"kudos,omitempty"`

	// EvaluatingKudos is kudos earned by workers still under evaluation.
	EvaluatingKudos float64 `json:"evaluating_kudos,omitempty"`

	// Concurrency is how many requests the user may have in flight.
	Concurrency int `json:"concurrency,omitempty"`

	WorkerInvited int  `json:"worker_invited,omitempty"`
	Moderator     bool `json:"moderator,omitempty"`

	KudosDetails *UserKudosDetails `json:"kudos_details,omitempty"`

	WorkerCount  int      `json:"worker_count,omitempty"`
	WorkerIDs    []string `json:"worker_ids,omitempty"`
	SharedKeyIDs []string `json:"sharedkey_ids,omitempty"`

	Styles            []UserStyle            `json:"styles,omitempty"`
	ActiveGenerations *UserActiveGenerations `json:"active_generations,omitempty"`
	MonthlyKudos      *MonthlyKudos          `json:"monthly_kudos,omitempty"`

	Trusted      bool `json:"trusted,omitempty"`
	Flagged      bool `json:"flagged,omitempty"`
	VPN          bool `json:"vpn,omitempty"`
	Service      bool `json:"service,omitempty"`
	Education    bool `json:"education,omitempty"`
	Customizer   bool `json:"customizer,omitempty"`
	Special      bool `json:"special,omitempty"`
	Deleted      bool `json:"deleted,omitempty"`
	Pseudonymous bool `json:"pseudonymous,omitempty"`

	// Suspicious is a moderation score; higher means more suspicious.
	Suspicious int `json:"suspicious,omitempty"`

	// Contact, AdminComment and ProxyPasskey are only returned to the
	// account owner or moderators.
	Contact      string `json:"contact,omitempty"`
	AdminComment string `json:"admin_comment,omitempty"`
	ProxyPasskey string `json:"proxy_passkey,omitempty"`

	// AccountAge is in seconds.
	AccountAge int64 `json:"account_age,omitempty"`

	Usage         *UsageDetails        `json:"usage,omitempty"`
	Contributions *ContributionDetails `json:"contributions,omitempty"`
	Records       *UserRecords         `json:"records,omitempty"`
}

// UserKudosDetails breaks the kudos balance down by origin.
type UserKudosDetails struct {
	Accumulated float64 `json:"accumulated,omitempty"`
	Gifted      float64 `json:"gifted,omitempty"`
	Donated     float64 `json:"donated,omitempty"`
	Admin       float64 `json:"admin,omitempty"`
	Received    float64 `json:"received,omitempty"`
	Recurring   float64 `json:"recurring,omitempty"`
	Awarded     float64 `json:"awarded,omitempty"`
	Styled      float64 `json:"styled,omitempty"`
}

// UserStyle references a style owned by the user.
type UserStyle struct {
	Name string    `json:"name,omitempty"`
	ID   string    `json:"id,omitempty"`
	Type StyleType `json:"type,omitempty"`
}

// UserActiveGenerations lists request ids currently in flight, per kind.
type UserActiveGenerations struct {
	Text    []string `json:"text,omitempty"`
	Image   []string `json:"image,omitempty"`
	Alchemy []string `json:"alchemy,omitempty"`
}

type MonthlyKudos struct {
	Amount       int64            `json:"amount,omitempty"`
	LastReceived *strfmt.DateTime `json:"last_received,omitempty"`
}

// UsageDetails is the legacy usage counter. Prefer Records.
type UsageDetails struct {
	MegapixelSteps float64 `json:"megapixelsteps,omitempty"`
	Requests       int64   `json:"requests,omitempty"`
}

// ContributionDetails is the legacy contribution counter. Prefer Records.
type ContributionDetails struct {
	MegapixelSteps float64 `json:"megapixelsteps,omitempty"`
	Fulfillments   int64   `json:"fulfillments,omitempty"`
}

type UserRecords struct {
	Usage        *UserThingRecords  `json:"usage,omitempty"`
	Contribution *UserThingRecords  `json:"contribution,omitempty"`
	Fulfillment  *UserAmountRecords `json:"fulfillment,omitempty"`
	Request      *UserAmountRecords `json:"request,omitempty"`
	Style        *UserAmountRecords `json:"style,omitempty"`
}

type UserThingRecords struct {
	MegapixelSteps float64 `json:"megapixelsteps,omitempty"`
	Tokens         int64   `json:"tokens,omitempty"`
}

type UserAmountRecords struct {
	Image         int64 `json:"image,omitempty"`
	Text          int64 `json:"text,omitempty"`
	Interrogation int64 `json:"interrogation,omitempty"`
}

// UserSort is the ordering accepted by [Client.ListUsers].
type UserSort string

const (
	// SortByKudos orders by kudos balance. It is the default.
	SortByKudos UserSort = "kudos"

	// SortByAge orders by account age.
	SortByAge UserSort = "age"
)
