package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StronkOnes/BrieflyOS/internal/model"
)

func TestAggregateEmptyCollections(t *testing.T) {
	m := Aggregate(nil, nil)

	assert.Zero(t, m.TotalLeads)
	assert.Zero(t, m.TotalOpportunities)
	assert.Zero(t, m.ConversionRate)
	assert.Zero(t, m.WinRate)
	assert.Zero(t, m.AvgDealSize)
	assert.Zero(t, m.TotalOppValue)
	assert.Empty(t, m.LeadsByStage)
	assert.Empty(t, m.OppsByStage)
}

func TestAggregateNoWonDeals(t *testing.T) {
	opps := []*model.Opportunity{
		{Stage: model.OppStageProspecting, Amount: 100},
		{Stage: model.OppStageLost, Amount: 200},
	}
	m := Aggregate(nil, opps)

	assert.Equal(t, 2, m.TotalOpportunities)
	assert.Zero(t, m.WinRate)
	assert.Zero(t, m.AvgDealSize)
	assert.Equal(t, 300.0, m.TotalOppValue)
}

func TestAggregateRatesAndHistograms(t *testing.T) {
	leads := []*model.Lead{
		{Stage: model.LeadStageNew},
		{Stage: model.LeadStageNew},
		{Stage: model.LeadStageContacted},
		{Stage: model.LeadStageQualified},
	}
	opps := []*model.Opportunity{
		{Stage: model.OppStageWon, Amount: 1000},
		{Stage: model.OppStageWon, Amount: 3000},
		{Stage: model.OppStageProposal, Amount: 500},
	}

	m := Aggregate(leads, opps)

	assert.Equal(t, 4, m.TotalLeads)
	assert.Equal(t, 3, m.TotalOpportunities)
	assert.InDelta(t, 75.0, m.ConversionRate, 1e-9)
	assert.InDelta(t, 66.666, m.WinRate, 0.001)
	assert.Equal(t, 2000.0, m.AvgDealSize)
	assert.Equal(t, 4500.0, m.TotalOppValue)
	assert.Equal(t, 2, m.LeadsByStage[model.LeadStageNew])
	assert.Equal(t, 1, m.LeadsByStage[model.LeadStageContacted])
	assert.Equal(t, 2, m.OppsByStage[model.OppStageWon])
	assert.Equal(t, 1, m.OppsByStage[model.OppStageProposal])
}
