package problem

import (
	"fmt"
	"strings"
)

// The service targets Primary 5 learners (Singapore curriculum, age
// 10-11). The prompts pin that register; everything "intelligent" about
// problem quality, hint phrasing, and feedback tone lives in the model.

const tutorSystem = "You are a friendly and encouraging Primary 5 math tutor for students aged 10-11."

// GenerationPrompt builds the problem-generation prompt. Each policy
// string is embedded exactly once.
func GenerationPrompt(d Difficulty, t ProblemType) string {
	var b strings.Builder

	b.WriteString("Generate a math word problem suitable for a Primary 5 student (Singapore curriculum, age 10-11).\n\n")
	b.WriteString("The problem should:\n")
	b.WriteString("- Be age-appropriate and engaging\n")
	b.WriteString("- Involve real-world scenarios (shopping, sports, time, measurement, fractions, decimals, etc.)\n")
	b.WriteString("- Have a clear numerical answer\n\n")

	fmt.Fprintf(&b, "Difficulty policy: %s\n", d.Policy())
	fmt.Fprintf(&b, "Operation policy: %s\n\n", t.Policy())

	b.WriteString("Return ONLY a valid JSON object with this exact structure (no markdown, no extra text):\n")
	b.WriteString(`{"problem_text": "The complete word problem as a string", "final_answer": the numerical answer as a number (not a string)}`)

	return b.String()
}

// HintPrompt builds the hint prompt. The hint must guide without
// revealing the final answer.
func HintPrompt(problemText string) string {
	var b strings.Builder

	b.WriteString("A student is stuck on this problem:\n\n")
	fmt.Fprintf(&b, "%q\n\n", problemText)
	b.WriteString("Give them a helpful hint that guides them toward the solution WITHOUT revealing the answer. Your hint should:\n")
	b.WriteString("- Help them understand what approach to take\n")
	b.WriteString("- Use encouraging language\n")
	b.WriteString("- Be 1-2 sentences maximum\n")
	b.WriteString("- NOT give away the final answer\n\n")
	b.WriteString("Return ONLY the hint text, no formatting.")

	return b.String()
}

// SolutionPrompt builds the step-by-step solution prompt. The solution
// ends with the restated final answer.
func SolutionPrompt(problemText string, correctAnswer float64) string {
	var b strings.Builder

	b.WriteString("Help a student understand how to solve this problem:\n\n")
	fmt.Fprintf(&b, "%q\n\n", problemText)
	b.WriteString("Provide a clear step-by-step solution that shows:\n")
	b.WriteString("- Step 1: What information we have\n")
	b.WriteString("- Step 2: What we need to find\n")
	b.WriteString("- Step 3, 4, etc.: Each calculation step with explanation\n")
	fmt.Fprintf(&b, "- Final Answer: %v\n\n", correctAnswer)
	b.WriteString("Use simple language for a 10-11 year old. Number each step clearly. Show your work with actual calculations.\n")
	b.WriteString("Return ONLY the step-by-step solution, no extra formatting or markdown.")

	return b.String()
}

// FeedbackPrompt builds the post-submission feedback prompt.
func FeedbackPrompt(problemText string, correctAnswer, userAnswer float64, isCorrect bool) string {
	var b strings.Builder

	b.WriteString("A student just attempted this problem:\n\n")
	fmt.Fprintf(&b, "Problem: %s\n", problemText)
	fmt.Fprintf(&b, "Correct Answer: %v\n", correctAnswer)
	fmt.Fprintf(&b, "Student's Answer: %v\n", userAnswer)
	fmt.Fprintf(&b, "Is Correct: %t\n\n", isCorrect)
	b.WriteString("Generate personalized feedback for the student. Your feedback should:\n")
	b.WriteString("- Start by telling them if they're correct or incorrect\n")
	b.WriteString("- If correct: Praise them and explain why their answer is right\n")
	b.WriteString("- If incorrect: Be encouraging, state the correct answer, and gently walk through the right approach\n")
	b.WriteString("- Keep it concise (3-5 sentences)\n")
	b.WriteString("- End with encouragement to keep practicing\n\n")
	b.WriteString("Return ONLY the feedback text, no JSON, no formatting.")

	return b.String()
}
