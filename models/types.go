package models

import "time"

// Entity sides
const (
	SideParticipants = "participants"
	SideGifts        = "gifts"
)

// Pairing engine modes
const (
	ModeSymmetric = "symmetric"
	ModeBipartite = "bipartite"
)

// Bipartite pairing policies
const (
	PolicyStrict     = "strict"
	PolicyBestEffort = "best-effort"
)

// Request types

type AddEntityRequest struct {
	// Identifier may arrive as a JSON string or number; handlers coerce it.
	Identifier interface{} `json:"identifier"`
}

type AddEntitiesBulkRequest struct {
	Identifiers  []interface{} `json:"identifiers"`
	Participants []interface{} `json:"participants"`
	Gifts        []interface{} `json:"gifts"`
}

type MatchRequest struct {
	Women []interface{} `json:"women"`
	Men   []interface{} `json:"men"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type AddEntityResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Identifier string `json:"identifier"`
}

type BulkAddResponse struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	Added          []string `json:"added"`
	Ignored        []string `json:"ignored"`
	TotalProcessed int      `json:"total_processed"`
}

type EntityListResponse struct {
	Success  bool     `json:"success"`
	Total    int      `json:"total"`
	Entities []Entity `json:"entities"`
}

type ArchiveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PairingListResponse struct {
	Success  bool      `json:"success"`
	Total    int       `json:"total"`
	Pairings []Pairing `json:"pairings"`
}

type MatchResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	RunID     string     `json:"run_id,omitempty"` // empty for the stateless endpoint
	Timestamp string     `json:"timestamp"`
	Couples   []Couple   `json:"couples"`
	Stats     MatchStats `json:"stats"`
}

type BipartiteRunResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	RunID     string    `json:"run_id"`
	Timestamp string    `json:"timestamp"`
	Pairings  []Pairing `json:"pairings"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	Admin   Admin  `json:"admin"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

type IndexResponse struct {
	Message   string                       `json:"message"`
	Version   string                       `json:"version"`
	Storage   string                       `json:"storage"`
	Endpoints map[string]map[string]string `json:"endpoints"`
}

type StatusResponse struct {
	Success   bool           `json:"success"`
	Timestamp string         `json:"timestamp"`
	Status    StatusSnapshot `json:"status"`
}

type ResetResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	PreviousData ResetCounts `json:"previous_data"`
	Timestamp    string      `json:"timestamp"`
}

type ResetPairingsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Removed int    `json:"removed"`
}

// Domain types

type Entity struct {
	Identifier string    `json:"identifier"`
	Paired     bool      `json:"is_paired"`
	PairedWith *string   `json:"paired_with,omitempty"`
	Archived   bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Pairing struct {
	ID          string    `json:"-"`
	RunID       string    `json:"run_id"`
	Participant string    `json:"participant"`
	Gift        string    `json:"gift"`
	Archived    bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Couple is the wire form of one matched couple. First/Second keep the
// caller's identifier type (numbers stay numbers on the stateless endpoint).
type Couple struct {
	Kind   string      `json:"kind"`
	First  interface{} `json:"first"`
	Second interface{} `json:"second"`
}

type MatchStats struct {
	TotalPeople  int `json:"total_people"`
	TotalCouples int `json:"total_couples"`
	CrossCouples int `json:"couples_M-W"`
	WomenCouples int `json:"couples_W-W"`
	MenCouples   int `json:"couples_M-M"`
	Unpaired     int `json:"unpaired_people"`
}

type StatusSnapshot struct {
	Participants SideStatus    `json:"participants"`
	Gifts        SideStatus    `json:"gifts"`
	Pairings     PairingStatus `json:"pairings"`
}

type SideStatus struct {
	Total       int      `json:"total"`
	Identifiers []string `json:"identifiers"`
	Unpaired    []string `json:"unpaired"`
}

type PairingStatus struct {
	Total   int       `json:"total"`
	Details []Pairing `json:"details"`
}

type ResetCounts struct {
	Participants int `json:"participants"`
	Gifts        int `json:"gifts"`
	Pairings     int `json:"pairings"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
