// Package api implements the HTTP handlers of the Sahayak server.
//
// Two handler groups are served:
//   - the relay functions, POST /functions/v1/generate-ai-content and
//     POST /functions/v1/generate-educational-image, which compose a prompt
//     and forward it to the text or image generator;
//   - the teacher account routes under /api: profile bootstrap, assignments
//     and students.
//
// Handlers decode and validate JSON with the helpers in api/shared, delegate
// to a service, and map failures to status codes and safe messages through
// HandleAPIError. Error detail is logged redacted and never sent to clients.
package api
