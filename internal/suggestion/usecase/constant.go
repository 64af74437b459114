package usecase

// Log prefixes
const (
	logPrefixFetch = "internal.suggestion.Fetch"
)

// promptTemplate asks for proactive next tasks biased toward business
// compliance and recurring bills. %s is the JSON projection of the
// existing collection.
const promptTemplate = `Based on these existing tasks for a business professional:
%s

Suggest 3 highly relevant and proactive next tasks or reminders.
Focus on business compliance (taxes, BIR), recurring bills (utilities), or common business management tasks.
Provide title, category, priority, and reason for suggestion.`

const suggestionTemperature = 0.7
