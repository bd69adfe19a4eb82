package extractor

// PromptVersion identifies the active extraction prompt. Prompt wording is
// append-only: changed behavior lands as a new constant and version.
const PromptVersion = "v1"

const systemPromptV1 = `You are a JSON generator.
ONLY output valid JSON objects.
NO explanations.
NO markdown.
NO additional text.
MUST match the exact structure provided.`

const promptV1 = `STRICTLY output a JSON object based on this consultation. NO additional text or explanations.

Consultation: %s

MUST follow this EXACT structure:
{
    "diagnosis": {
        "condition": "tonsillitis",
        "findings": ["tonsils present"]
    },
    "medications": [
        {
            "name": "antacid",
            "type": "tablet",
            "dosage": "Not mentioned",
            "duration": "Not mentioned",
            "timing": "Not mentioned"
        }
    ],
    "restrictions": [],
    "follow_up": {
        "timing": "Not mentioned",
        "instructions": "Not mentioned"
    },
    "safety_alerts": {
        "critical_symptoms": [],
        "drug_interactions": [],
        "contraindications": [],
        "allergies_checked": "Not checked"
    }
}

ONLY return valid JSON. NO commentary or explanations.`
