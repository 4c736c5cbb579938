// Package service contains the application use cases that sit between the
// HTTP handlers and the stores: bootstrapping a teacher's profile on first
// sign-in and managing the teacher's assignments and students.
//
// Services receive their stores and logger through constructor injection and
// never depend on a concrete database implementation. Domain validation
// errors are passed through unchanged so the API layer can map them to 400.
package service
