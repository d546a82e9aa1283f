package tutor

import (
	"fmt"
	"strings"
)

func quizPrompt(subject, topic string, numQuestions int) string {
	return fmt.Sprintf(`Create a %d-question multiple choice quiz about %s in %s.

Requirements:
- Each question should test understanding of key concepts
- Provide 4 multiple choice options (A, B, C, D)
- Mix difficulty levels (easy, medium, hard)
- Include clear, unambiguous questions
- Make sure there's only one clearly correct answer per question

Return the quiz in the following JSON format:
{
    "title": "Quiz title",
    "questions": [
        {
            "question": "Question text",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": 0,
            "explanation": "Brief explanation of the correct answer",
            "difficulty": "easy|medium|hard"
        }
    ]
}`, numQuestions, topic, subject)
}

// historyWindow limits how many past exchanges are fed back as context.
const historyWindow = 5

func tutorSystemPrompt(subject, topic string, history []Message) string {
	var context strings.Builder
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, msg := range history {
		speaker := "Tutor"
		if msg.Role == "user" {
			speaker = "Student"
		}
		fmt.Fprintf(&context, "%s: %s\n", speaker, msg.Content)
	}

	return fmt.Sprintf(`You are an expert educational tutor specializing in %s.
You are currently helping a student learn about %s.

Your teaching style should be:
- Patient and encouraging
- Use step-by-step explanations
- Provide examples when helpful
- Ask guiding questions to help student think
- Adapt to the student's level of understanding
- Be concise but thorough

Previous conversation context:
%s`, subject, topic, context.String())
}

func tutorUserPrompt(topic, question string) string {
	return fmt.Sprintf(`Student's question about %s: %s

Please provide a helpful tutoring response that guides the student's learning.`, topic, question)
}

func feedbackPrompt(subject, topic string, score float64) string {
	performance := "needs_improvement"
	switch {
	case score >= 90:
		performance = "excellent"
	case score >= 80:
		performance = "good"
	case score >= 60:
		performance = "fair"
	}

	return fmt.Sprintf(`A student just completed a quiz on %s in %s with a score of %.1f%% (performance level: %s).

Provide personalized learning recommendations including:
1. Feedback on their performance
2. Specific areas to focus on for improvement
3. Study strategies tailored to this topic
4. Next steps in their learning journey
5. Encouragement and motivation

Keep the response concise but actionable.`, topic, subject, score, performance)
}

func tipsPrompt(subject, topic string) string {
	return fmt.Sprintf(`As an expert %s tutor, provide 3-5 specific learning tips for studying %s.
Focus on effective study strategies, common pitfalls to avoid, and practical advice for mastering this topic.

Format your response as a helpful guide with actionable tips.`, subject, topic)
}

func practicePrompt(subject, topic string) string {
	return fmt.Sprintf(`Create a practice problem for %s - %s that would help a student understand the key concepts.

Include:
1. A clear problem statement
2. Any necessary context or given information
3. What the student should find or solve

Make it educational and appropriately challenging. Don't include the solution - the student should work through it.`, subject, topic)
}

func explainPrompt(subject, topic string) string {
	return fmt.Sprintf(`Provide a clear, comprehensive explanation of %s in %s.

Structure your explanation with:
1. What it is (definition)
2. Why it's important
3. How it works or key principles
4. A simple example if applicable
5. Connection to other related concepts

Make it accessible but thorough, suitable for someone learning this topic.`, topic, subject)
}
