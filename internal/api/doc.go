// Package api contains the HTTP handlers for the shopping list
// service: registration and login, profile management and password
// reset, and the owner-scoped shopping list and item endpoints with
// their pagination and search behavior.
package api
