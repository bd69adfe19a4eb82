package translator

// PromptVersion identifies the active translation prompt. Prompt wording is
// append-only: changed behavior lands as a new constant and version.
const PromptVersion = "v1"

const systemPromptV1 = "You are a medical translator specializing in Urdu to English translation. Provide clear and accurate translations."

const promptV1 = `You are translating a medical consultation from Urdu to English.
Original Urdu text: %s

Rules:
1. Translate accurately while maintaining medical terminology
2. Keep the conversational flow
3. Preserve any mentioned medications, dosages, or instructions
4. Maintain the sequence of dialogue

Translate the above text to English:`
