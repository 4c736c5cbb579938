// Package generation turns a teacher's request into generated teaching
// content. It owns the prompt templates (Compose), the ports implemented by
// the Gemini and OpenAI adapters (TextGenerator, ImageGenerator) and the
// error taxonomy shared by every component that talks to a generative API.
package generation
