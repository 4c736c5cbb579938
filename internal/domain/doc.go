// Package domain contains the core entities of the teaching assistant:
// generation requests and results, teacher profiles, assignments and
// students. It has no knowledge of HTTP, storage or the generative APIs.
package domain
