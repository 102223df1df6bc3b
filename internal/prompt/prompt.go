// Package prompt renders the natural-language prompts sent to the AI
// completion gateway. Every template instructs the model to respond with a
// specific JSON object; the decoding side lives in the gateway. Functions
// here are pure and never perform network calls, so prompt wording changes
// in exactly one place.
package prompt

import (
	"fmt"
	"strings"
)

// Question returns the prompt for generating an interview question for a
// category and difficulty, optionally narrowed to a topic. Expected response:
// {"question", "context", "expectedPoints"}.
func Question(category, difficulty, topic string) string {
	topicContext := ""
	topicLine := ""
	if topic != "" {
		topicContext = fmt.Sprintf("related to %s", topic)
		topicLine = fmt.Sprintf("- Topic: %s\n", topic)
	}

	return fmt.Sprintf(`You are an expert technical interviewer. Generate a %s difficulty %s interview question %s.

Requirements:
- The question should be realistic and commonly asked in interviews
- Difficulty: %s (easy/medium/hard)
- Category: %s (behavioral/technical/system-design)
%s
Provide the response in JSON format:
{
  "question": "<the interview question>",
  "context": "<brief context or what to focus on>",
  "expectedPoints": [<list of 3-4 key points a good answer should cover>]
}`, difficulty, category, topicContext, difficulty, category, topicLine)
}

// Feedback returns the prompt for evaluating an answer against the STAR
// rubric. Expected response: {"score", "strengths", "weaknesses",
// "improvements", "starAnalysis", "exampleAnswer"}.
func Feedback(question, answer string) string {
	return fmt.Sprintf(`You are an expert interview coach. Analyze this interview answer using the STAR method (Situation, Task, Action, Result).

Question: "%s"

Candidate's Answer: "%s"

Provide detailed feedback in JSON format with the following structure:
{
  "score": <number 0-10>,
  "strengths": [<list of 2-3 strengths>],
  "weaknesses": [<list of 2-3 areas for improvement>],
  "improvements": [<list of 2-3 specific suggestions>],
  "starAnalysis": {
    "situation": "<analysis of situation component>",
    "task": "<analysis of task component>",
    "action": "<analysis of action component>",
    "result": "<analysis of result component>"
  },
  "exampleAnswer": "<a better version of the answer incorporating improvements>"
}

Be constructive, specific, and encouraging. Focus on actionable feedback.`, question, answer)
}

// ResumeQuestion returns the prompt for generating a question grounded in a
// candidate's resume. Expected response: {"question", "project",
// "technicalAreas"}.
func ResumeQuestion(resumeText, projectName string) string {
	projectContext := "Choose any interesting project from the resume"
	if projectName != "" {
		projectContext = fmt.Sprintf("Focus specifically on the project: %q", projectName)
	}

	return fmt.Sprintf(`You are an experienced technical interviewer reviewing a candidate's resume.

Resume Content:
%s

%s

Generate a technical interview question based on their experience. The question should:
- Be specific to their actual work
- Test deep technical understanding
- Be challenging but fair

Provide the response in JSON format:
{
  "question": "<the interview question>",
  "project": "<which project/experience this relates to>",
  "technicalAreas": [<list of technical areas being tested>]
}`, resumeText, projectContext)
}

// STARAnalysis returns the prompt for a standalone STAR breakdown of an
// answer. Expected response: {"situation", "task", "action", "result",
// "completeness", "suggestions"}.
func STARAnalysis(answer string) string {
	return fmt.Sprintf(`Analyze this interview answer using the STAR method framework.

Answer: "%s"

Identify and extract:
- Situation: The context or background
- Task: The challenge or responsibility
- Action: The specific steps taken
- Result: The outcome or impact

Provide analysis in JSON format:
{
  "situation": "<identified situation or 'Not clearly stated'>",
  "task": "<identified task or 'Not clearly stated'>",
  "action": "<identified actions or 'Not clearly stated'>",
  "result": "<identified results or 'Not clearly stated'>",
  "completeness": <percentage 0-100>,
  "suggestions": [<list of suggestions to improve STAR structure>]
}`, answer)
}

// CompanyQuestion returns the prompt for a company- and role-specific
// question. Expected response: {"question", "companyContext", "keyPoints"}.
func CompanyQuestion(company, role string) string {
	company = strings.TrimSpace(company)
	role = strings.TrimSpace(role)

	return fmt.Sprintf(`You are preparing a candidate for an interview at %s for a %s position.

Generate a realistic interview question that %s is known to ask, considering:
- Company culture and values
- Technical stack commonly used
- Role-specific expectations

Provide the response in JSON format:
{
  "question": "<the interview question>",
  "companyContext": "<why this question is relevant to %s>",
  "keyPoints": [<list of important points to address>]
}`, company, role, company, company)
}
