package llm

import "fmt"

// QASystemInstruction constrains the assistant to general educational
// maternal-health information grounded in the retrieved documents.
const QASystemInstruction = "You are an AI assistant specialized in maternal health education. " +
	"Provide general, educational information only. " +
	"If the answer is partially available across multiple documents, you MAY summarize and combine information logically. " +
	"If the answer is not clearly stated in the documents, provide a GENERAL EDUCATIONAL explanation and clearly mention that it is general information. " +
	"Do NOT provide diagnosis, treatment, prescriptions, or emergency medical advice. " +
	"Do NOT invent facts that contradict the documents. " +
	"Do NOT give diagnosis, treatment, or emergency instructions. " +
	"If information is missing, give general educational guidance."

// QAPrompt formats the retrieved context and the user question into the
// prompt body sent alongside QASystemInstruction.
func QAPrompt(context, question string) string {
	return fmt.Sprintf("Context:\n%s\n\nQuestion:\n%s", context, question)
}

// FallbackPrompt is the degraded no-context prompt. It deliberately
// carries no system instruction.
func FallbackPrompt(query string) string {
	return "Provide general educational information about: " + query
}
