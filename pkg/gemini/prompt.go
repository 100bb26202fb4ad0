package gemini

// TaskExtractionSystemPrompt is the static instruction template sent to
// Gemini ahead of every transcript. It is not user-controlled and never
// mutated; transcripts are appended after PromptDelimiter.
const TaskExtractionSystemPrompt = `You are an assistant that extracts tasks from spoken-language transcripts.

RULES:
1. Read the transcript and extract every actionable task the speaker mentions.
2. For each task, identify:
   - text: Short, clear task description (required)
   - due: The due-date phrase exactly as spoken (e.g., "tomorrow", "Friday", "2024-03-15"). Omit if none was mentioned.
   - start_date / end_date: YYYY-MM-DD dates when the speaker describes a scheduled event. Omit otherwise.
   - start_time / end_time: HH:MM 24-hour times when mentioned. Omit otherwise.
   - recurrence: Plain phrase such as "every Monday" when the task repeats. Omit otherwise.
3. Return ONLY a valid JSON array of objects. No markdown, no code blocks, no explanation text.
4. Keep due-date phrases verbatim; do NOT convert them to absolute dates yourself.
5. If the transcript contains nothing actionable, return [].

EXAMPLE INPUT:
"Finish math homework tomorrow and book the dentist for Friday"

EXAMPLE OUTPUT:
[
  {"text": "Finish math homework", "due": "tomorrow"},
  {"text": "Book the dentist", "due": "Friday"}
]`

// PromptDelimiter separates the instruction template from the transcript.
const PromptDelimiter = "\n\nTRANSCRIPT:\n"

// BuildExtractionPrompt builds the full extraction prompt for a transcript.
// currentDate gives the model a reference point for context only; relative
// phrases are still returned verbatim and resolved server-side.
func BuildExtractionPrompt(transcript string, currentDate string) string {
	return TaskExtractionSystemPrompt +
		"\n\nCURRENT DATE (CONTEXT ONLY): " + currentDate +
		PromptDelimiter + transcript
}
