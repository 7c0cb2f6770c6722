package model

// Lead is a captured sales lead. The stage string is stored verbatim.
type Lead struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Stage     string `json:"stage"`
	CreatedAt string `json:"createdAt"`
}

// Lead stages.
const (
	LeadStageNew       = "New"
	LeadStageContacted = "Contacted"
	LeadStageQualified = "Qualified"
	LeadStageLost      = "Lost"
)

// Opportunity tracks a deal in the sales pipeline. LeadName is a snapshot
// taken at creation and never resynchronized with the lead it came from;
// LeadID is a soft reference that is not validated against the leads
// collection.
type Opportunity struct {
	ID          int64   `json:"id"`
	LeadID      int64   `json:"leadId"`
	LeadName    string  `json:"leadName"`
	Amount      float64 `json:"amount"`
	Stage       string  `json:"stage"`
	Probability int     `json:"probability"`
	CreatedAt   string  `json:"createdAt"`
}

// Opportunity stages.
const (
	OppStageProspecting = "Prospecting"
	OppStageProposal    = "Proposal"
	OppStageNegotiation = "Negotiation"
	OppStageWon         = "Won"
	OppStageLost        = "Lost"
)

// BlogPost is a stored article draft. Tags and categories are free-form
// comma-separated strings, parsed ad hoc by consumers.
type BlogPost struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featuredImage"`
	Tags          string `json:"tags"`
	Categories    string `json:"categories"`
	Timestamp     string `json:"timestamp"`
}

// HistoryItem records that a generation action happened. Type is a free-form
// tag naming the originating tool.
type HistoryItem struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Topic     string `json:"topic"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Contact is a single result from the contact-scrape operation. It is never
// persisted server-side.
type Contact struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	Organization  string `json:"organization"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	SourceURL     string `json:"sourceUrl"`
}
