// Package models holds the database row types of the review and reaction API.
package models
