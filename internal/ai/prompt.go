package ai

// ExtractionPrompt is prepended to the raw meeting notes. The reply contract
// is a bare JSON array; parsing still tolerates fenced blocks and prose.
const ExtractionPrompt = `You are an assistant that extracts action items from meeting notes.

Analyze the following meeting notes and extract all action items. For each action item, identify:
1. The task/action that needs to be done (title)
2. The person assigned to do it (assignee) - if mentioned
3. The due date (due_date) - if mentioned, format as "Jan 15" style

Return ONLY a JSON array with no additional text. Each item should have these fields:
- "title": string (required) - the action item description
- "assignee": string or null - the person's name
- "due_date": string or null - the due date in "Mon DD" format

Example output:
[
    {"title": "Review the Q1 roadmap", "assignee": "John Smith", "due_date": "Jan 15"},
    {"title": "Update documentation", "assignee": "Sarah Lee", "due_date": null}
]

If no action items are found, return an empty array: []

Meeting notes:
`
