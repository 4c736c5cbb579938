// Package gemini provides an implementation of the generation.TextGenerator
// interface backed by Google's Gemini API.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's generation service to the external Gemini
// service. It sends one GenerateContent request per prompt, concatenates the
// text parts of the first candidate and translates upstream failures into the
// generation package's error taxonomy:
//
//   - API errors become *generation.RemoteCallError carrying the upstream status
//   - responses without a candidate or text become generation.ErrInvalidResponse
//   - safety-blocked responses become generation.ErrContentBlocked
//
// Requests are never retried.
package gemini
