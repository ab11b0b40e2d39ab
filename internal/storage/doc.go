// Package storage writes CLI results to disk atomically.
package storage
