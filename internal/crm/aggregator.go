// Package crm derives KPI figures from the leads and opportunities
// collections. Every ratio defines 0 as the result when its denominator
// is 0.
package crm

import "github.com/StronkOnes/BrieflyOS/internal/model"

// Metrics are the dashboard figures derived from the CRM collections.
type Metrics struct {
	TotalLeads         int            `json:"totalLeads"`
	TotalOpportunities int            `json:"totalOpportunities"`
	ConversionRate     float64        `json:"conversionRate"`
	TotalOppValue      float64        `json:"totalOppValue"`
	WinRate            float64        `json:"winRate"`
	AvgDealSize        float64        `json:"avgDealSize"`
	LeadsByStage       map[string]int `json:"leadsByStage"`
	OppsByStage        map[string]int `json:"oppsByStage"`
}

// Aggregate computes Metrics from in-memory collections.
func Aggregate(leads []*model.Lead, opportunities []*model.Opportunity) Metrics {
	m := Metrics{
		TotalLeads:         len(leads),
		TotalOpportunities: len(opportunities),
		LeadsByStage:       map[string]int{},
		OppsByStage:        map[string]int{},
	}

	for _, l := range leads {
		m.LeadsByStage[l.Stage]++
	}

	wonCount := 0
	wonValue := 0.0
	for _, o := range opportunities {
		m.OppsByStage[o.Stage]++
		m.TotalOppValue += o.Amount
		if o.Stage == model.OppStageWon {
			wonCount++
			wonValue += o.Amount
		}
	}

	if m.TotalLeads > 0 {
		m.ConversionRate = float64(m.TotalOpportunities) / float64(m.TotalLeads) * 100
	}
	if m.TotalOpportunities > 0 {
		m.WinRate = float64(wonCount) / float64(m.TotalOpportunities) * 100
	}
	if wonCount > 0 {
		m.AvgDealSize = wonValue / float64(wonCount)
	}
	return m
}
