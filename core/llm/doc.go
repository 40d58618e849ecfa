// Package llm holds the configuration and client constructors for the
// hosted model APIs (OpenAI, Gemini) used by the vision and catalog sources.
//
// Model answers are free text that usually, but not always, contains a JSON
// array. DecodeObjects recovers whatever objects it can from such answers.
package llm
