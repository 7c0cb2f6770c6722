package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/StronkOnes/BrieflyOS/internal/completion"
)

// System personas, one per tool.
const (
	personaBusinessAssistant = "You're an intelligent business assistant. Your tasks include researching trends, generating professional articles, managing leads, tracking sales pipelines, planning marketing campaigns, and producing reports for business owners."
	personaShortScript       = "You're an intelligent content creator specialized in short-form video scripts. Create engaging, concise scripts for social media platforms like TikTok, Instagram Reels, and YouTube Shorts."
	personaPodcastScript     = "You're an intelligent podcast script writer. Create engaging, conversational podcast scripts with natural flow, interesting stories, and audience engagement elements."
	personaYouTubeScript     = "You're an intelligent YouTube script writer. Create engaging, structured YouTube video scripts with hooks, clear segments, audience retention elements, and strong calls-to-action."
	personaKPIAnalyst        = "You are an AI assistant specialized in business KPI analysis. Provide insightful analysis based on the provided lead and opportunity data."
	personaCRMSummarizer     = "You are an AI assistant specialized in summarizing CRM data. Provide a concise and insightful summary."
	personaCampaignPlanner   = "You are an AI assistant specialized in marketing campaign planning. Generate a detailed campaign plan."
	personaEmailWriter       = "You are an AI assistant specialized in generating professional email content. Generate a well-structured and persuasive email."
	personaContactScraper    = "You are an AI-powered contact scraping assistant. Your task is to find real contact information from the web based on the user's query. You must return the data in a valid JSON format."
)

// prompt pairs a persona with one user message. Prompts embed caller-supplied
// fields by plain interpolation; no escaping or injection mitigation is
// applied, matching the observed service behavior.
func prompt(persona, user string) []completion.Message {
	return []completion.Message{
		{Role: completion.RoleSystem, Content: persona},
		{Role: completion.RoleUser, Content: user},
	}
}

func researchPrompt(topic string) []completion.Message {
	return prompt(personaBusinessAssistant,
		fmt.Sprintf("Research the topic '%s'. Provide a 3-point summary with insights, stats, and trends in bullet form.", topic))
}

func articlePrompt(researchSummary string) []completion.Message {
	return prompt(personaBusinessAssistant,
		fmt.Sprintf("Write a 500-word blog article based on this research: %s. Include a professional tone, subheadings, and a clear conclusion.", researchSummary))
}

func scriptPrompt(kind ScriptKind, topic, researchSummary string) []completion.Message {
	if researchSummary == "" {
		researchSummary = "No research provided"
	}
	switch kind {
	case ScriptShort:
		return prompt(personaShortScript,
			fmt.Sprintf("Based on this topic: '%s' and research: %s, create a 30-60 second short video script. Include hook, main points, and call-to-action. Make it engaging and suitable for social media.", topic, researchSummary))
	case ScriptPodcast:
		return prompt(personaPodcastScript,
			fmt.Sprintf("Based on this topic: '%s' and research: %s, create a 10-15 minute podcast script. Include introduction, main discussion points, examples or stories, and conclusion. Make it conversational and engaging.", topic, researchSummary))
	default:
		return prompt(personaYouTubeScript,
			fmt.Sprintf("Based on this topic: '%s' and research: %s, create a 5-10 minute YouTube video script. Include attention-grabbing intro, main content segments, engagement prompts, and strong outro with subscribe call-to-action.", topic, researchSummary))
	}
}

func kpiAnalysisPrompt(leadsData, opportunitiesData json.RawMessage) []completion.Message {
	return prompt(personaKPIAnalyst,
		fmt.Sprintf("Analyze the following lead data: %s\nAnd opportunity data: %s. Provide a summary of key performance indicators, trends, and actionable insights.", compactJSON(leadsData), compactJSON(opportunitiesData)))
}

func crmSummaryPrompt(crmData json.RawMessage) []completion.Message {
	return prompt(personaCRMSummarizer,
		fmt.Sprintf("Summarize the following CRM data: %s. Highlight key interactions, customer sentiments, and next steps.", compactJSON(crmData)))
}

func campaignPlanPrompt(campaignDetails json.RawMessage) []completion.Message {
	return prompt(personaCampaignPlanner,
		fmt.Sprintf("Generate a marketing campaign plan based on these details: %s. Include target audience, channels, messaging, and KPIs.", compactJSON(campaignDetails)))
}

func emailPrompt(emailContext json.RawMessage) []completion.Message {
	return prompt(personaEmailWriter,
		fmt.Sprintf("Generate an email based on the following context: %s. Include a clear subject line, professional tone, and a call to action.", compactJSON(emailContext)))
}

func contactScrapePrompt(query string) []completion.Message {
	return prompt(personaContactScraper,
		fmt.Sprintf("Scrape contact information for: %s. Find as many contacts as you can. For each contact, provide their name, title, organization, email, contact number, and the source URL where you found the information. The output must be a JSON array of objects with the following fields: 'name', 'title', 'organization', 'email', 'contactNumber', 'sourceUrl'. A contact must have at least an email or a contact number to be included.", query))
}

// compactJSON renders caller-supplied structures the way a JSON encoder
// would, without indentation. Invalid input is embedded as-is.
func compactJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "null"
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return string(raw)
	}
	return string(b)
}
